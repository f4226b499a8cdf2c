// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/fader/base/logx"
	"github.com/spf13/cobra"
)

// flags are the global verbosity flags.
type flags struct {
	vv, v, q bool
}

func newRootCmd() *cobra.Command {
	fl := &flags{}
	cmd := &cobra.Command{
		Use:           "fader",
		Short:         "Replay gestures against a dual-handle range fader",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.SetUserLevel(logx.LevelFromFlags(fl.vv, fl.v, fl.q))
			logx.SetDefaultLoggerTo(cmd.ErrOrStderr())
			logx.SetOutput(cmd.OutOrStdout())
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&fl.vv, "vv", false, "enable very verbose (debug) logging")
	pf.BoolVarP(&fl.v, "verbose", "v", false, "enable verbose (info) logging")
	pf.BoolVarP(&fl.q, "quiet", "q", false, "only log errors")

	cmd.AddCommand(newReplayCmd(), newWatchCmd(), newMapCmd())
	return cmd
}
