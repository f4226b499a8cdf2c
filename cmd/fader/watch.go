// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/fader/base/errors"
	"cogentcore.org/fader/base/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Replay a gesture script again whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchFile(cmd, args[0])
		},
	}
}

// watchFile replays the file once and then every time it is written,
// until the command context is done. The directory is watched rather
// than the file so that editors that replace the file are handled.
func watchFile(cmd *cobra.Command, file string) error {
	w := cmd.OutOrStdout()
	file = filepath.Clean(file)
	replayReport(w, file)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("watching %s: %w", file, err)
	}
	slog.Info("watching script", "file", file)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isScriptEvent(ev, file) {
				continue
			}
			slog.Debug("script changed", "file", file, "op", ev.Op)
			fmt.Fprintln(w, logx.InfoColor("--- "+file))
			replayReport(w, file)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

// replayReport replays the file, writing a failed replay to w as well
// as to the log so that it shows up next to the previous output.
func replayReport(w io.Writer, file string) {
	if err := errors.Log(replayFile(w, file)); err != nil {
		fmt.Fprintln(w, logx.ErrorColor("replay failed: "+err.Error()))
	}
}

// isScriptEvent returns whether the event is a write or create of the file.
func isScriptEvent(ev fsnotify.Event, file string) bool {
	if filepath.Clean(ev.Name) != file {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
