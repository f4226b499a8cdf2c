// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/fader/base/logx"
	"cogentcore.org/fader/core"
	"cogentcore.org/fader/replay"
	"github.com/spf13/cobra"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a gesture script and print every range change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return replayFile(cmd.OutOrStdout(), args[0])
		},
	}
}

// replayFile opens and replays the given script, writing the
// changes and the final range to w.
func replayFile(w io.Writer, file string) error {
	s, err := replay.Open(file)
	if err != nil {
		return err
	}
	f, changes, err := s.Run()
	if err != nil {
		return err
	}
	slog.Info("replayed script", "file", file, "gestures", len(s.Gestures), "changes", len(changes))
	for _, c := range changes {
		fmt.Fprintf(w, "#%d %v: left %g, right %g %s\n", c.Step, c.Gesture, c.Left, c.Right, orientationString(c.Orientation))
	}
	left, right := f.Range()
	fmt.Fprintf(w, "%s left %g, right %g %s\n", logx.InfoColor("final"), left, right, orientationString(f.Orientation()))
	return nil
}

func orientationString(o core.Orientations) string {
	if o == core.Outside {
		return logx.WarnColor(o.String())
	}
	return logx.SuccessColor(o.String())
}
