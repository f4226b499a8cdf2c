// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/fader/math32"
)

// Gesture is one pan gesture event: the phase and the pointer
// position in the local coordinates of the receiving fader.
type Gesture struct {

	// Phase is the phase of the gesture this event belongs to.
	Phase Phases

	// Pos is the pointer position, with the origin at the top-left
	// of the fader frame.
	Pos math32.Vector2
}

// NewGesture returns a new [Gesture] for the given phase and position.
func NewGesture(ph Phases, x, y float32) Gesture {
	return Gesture{Phase: ph, Pos: math32.Vec2(x, y)}
}

func (g Gesture) String() string {
	return fmt.Sprintf("%v%v", g.Phase, g.Pos)
}

// Handler is anything that consumes gesture events, typically a fader.
type Handler interface {
	HandleGesture(g Gesture)
}

// Dispatch sends the given gestures to the handler in order.
func Dispatch(h Handler, gs ...Gesture) {
	for _, g := range gs {
		h.HandleGesture(g)
	}
}
