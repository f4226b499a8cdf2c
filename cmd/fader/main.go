// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fader replays recorded gesture scripts against a range
// fader and inspects its position to value mapping.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/fader/base/errors"
	"cogentcore.org/fader/base/logx"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if errors.Log(err) != nil {
		os.Exit(1)
	}
}
