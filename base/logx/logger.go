// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"
)

// level is the dynamic level shared by every logger made by [SetDefaultLogger],
// so that changing [UserLevel] through [SetUserLevel] takes effect immediately.
var level = &slog.LevelVar{}

// SetUserLevel sets [UserLevel] and updates the level of the
// default logger installed by [SetDefaultLogger].
func SetUserLevel(l slog.Level) {
	UserLevel = l
	level.Set(l)
}

// SetDefaultLogger sets the default slog logger to a text
// logger writing to os.Stderr at [UserLevel].
func SetDefaultLogger() {
	SetDefaultLoggerTo(os.Stderr)
}

// SetDefaultLoggerTo is [SetDefaultLogger] with the given writer.
func SetDefaultLoggerTo(w io.Writer) {
	level.Set(UserLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
