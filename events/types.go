// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pan gesture events that drive a fader.
// The host platform's gesture recognizer translates pointer input
// into a stream of [Gesture] values in fader-local coordinates.
package events

// Phases are the phases of a single pan gesture. A gesture
// always starts with [Begin], may have any number of [Change]
// phases, and ends with exactly one of [End] or [Cancel].
type Phases int32

const (
	// UnknownPhase is the zero value and is ignored by receivers.
	UnknownPhase Phases = iota

	// Begin is when the pointer first goes down and the gesture
	// recognizer has decided that a pan is starting.
	Begin

	// Change is sent for every pointer movement after [Begin].
	Change

	// End is when the pointer is released normally.
	End

	// Cancel is when the host aborts the gesture, for example
	// because another recognizer claimed the touch. Receivers
	// treat it like [End]; nothing already applied is undone.
	Cancel
)

// IsTerminal returns whether the phase ends a gesture.
func (ph Phases) IsTerminal() bool {
	return ph == End || ph == Cancel
}
