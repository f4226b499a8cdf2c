// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	MinValue     float32 `toml:"minValue" yaml:"minValue"`
	MaxValue     float32 `toml:"maxValue" yaml:"maxValue" default:"1"`
	HandleRadius float32 `toml:"handleRadius" yaml:"handleRadius" default:"40"`
}

func writeFile(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, testConfig{MaxValue: 1, HandleRadius: 40}, *cfg)
}

func TestOpen(t *testing.T) {
	tf := writeFile(t, "fader.toml", "maxValue = 24.0\n")
	yf := writeFile(t, "fader.yml", "handleRadius: 25\n")

	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	require.NoError(t, OpenFiles(cfg, tf, yf))
	assert.Equal(t, testConfig{MaxValue: 24, HandleRadius: 25}, *cfg)

	err := Open(cfg, writeFile(t, "fader.json", "{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".json")

	assert.Error(t, Open(cfg, filepath.Join(t.TempDir(), "missing.yaml")))
}
