// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in printing messages.
// It is on by default; the terminal color profile still
// decides whether escape sequences are actually emitted.
var UseColor = true

// output is the terminal output that colors are computed for.
var output = termenv.NewOutput(os.Stdout)

// SetOutput sets the writer whose terminal capabilities determine
// the colors used by [InfoColor] and friends. Writers that are not
// terminals get plain text.
func SetOutput(w io.Writer) {
	output = termenv.NewOutput(w)
}

func applyColor(c termenv.ANSIColor, str string) string {
	if !UseColor {
		return str
	}
	return output.String(str).Foreground(c).String()
}

// InfoColor returns the given string in the info color (cyan).
func InfoColor(str string) string {
	return applyColor(termenv.ANSICyan, str)
}

// SuccessColor returns the given string in the success color (green).
func SuccessColor(str string) string {
	return applyColor(termenv.ANSIGreen, str)
}

// WarnColor returns the given string in the warning color (yellow).
func WarnColor(str string) string {
	return applyColor(termenv.ANSIYellow, str)
}

// ErrorColor returns the given string in the error color (red).
func ErrorColor(str string) string {
	return applyColor(termenv.ANSIRed, str)
}
