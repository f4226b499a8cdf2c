// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/fader/base/iox/tomlx"
	"cogentcore.org/fader/base/iox/yamlx"
)

// Open reads the given config object from the given file, choosing
// the encoding from the file extension: .toml for TOML and
// .yaml or .yml for YAML. Fields not present in the file keep
// their current values, so defaults should be set first.
func Open(cfg any, file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return tomlx.Open(cfg, file)
	case ".yaml", ".yml":
		return yamlx.Open(cfg, file)
	default:
		return fmt.Errorf("cli.Open: unsupported config file extension %q for %q (want .toml, .yaml or .yml)", filepath.Ext(file), file)
	}
}

// OpenFiles reads the given config object from the given files in order,
// so that later files overwrite settings from earlier ones.
func OpenFiles(cfg any, files ...string) error {
	for _, file := range files {
		if err := Open(cfg, file); err != nil {
			return err
		}
	}
	return nil
}
