// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"cogentcore.org/fader/core"
	"github.com/spf13/cobra"
)

func newMapCmd() *cobra.Command {
	opts := core.Options{}
	opts.Defaults()
	cmd := &cobra.Command{
		Use:   "map POSITION...",
		Short: "Print the value for each handle position",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			tr, dom := opts.Track(), opts.Domain()
			w := cmd.OutOrStdout()
			for _, a := range args {
				p, err := strconv.ParseFloat(a, 32)
				if err != nil {
					return fmt.Errorf("invalid position %q: %w", a, err)
				}
				pos := tr.ClampPosition(float32(p))
				fmt.Fprintf(w, "%s -> %g (position %g)\n", a, tr.ValueForPosition(pos, dom), pos)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Float32Var(&opts.TrackLength, "width", 300, "track width in pixels")
	fs.Float32Var(&opts.HandleRadius, "radius", opts.HandleRadius, "handle radius in pixels")
	fs.Float32Var(&opts.MinValue, "min", opts.MinValue, "minimum value")
	fs.Float32Var(&opts.MaxValue, "max", opts.MaxValue, "maximum value")
	return cmd
}
