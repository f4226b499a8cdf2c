// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type domain struct {
	MinValue float32
	MaxValue float32
	Labels   []string
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "domain.toml")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestOpen(t *testing.T) {
	d := domain{MinValue: 1}
	require.NoError(t, Open(&d, writeFile(t, "MaxValue = 10.0\nLabels = [\"lo\", \"hi\"]\n")))
	assert.Equal(t, domain{1, 10, []string{"lo", "hi"}}, d)
}

func TestUnknownField(t *testing.T) {
	d := domain{}
	err := Open(&d, writeFile(t, "MaxVal = 24.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain.toml")
}
