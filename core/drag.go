// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"

	"cogentcore.org/fader/events"
	"cogentcore.org/fader/math32"
)

// Drag is the state of a drag session, from the [events.Begin] of a
// gesture to its [events.End] or [events.Cancel]. Only one handle can
// be dragged per session.
type Drag struct {

	// active is the handle being dragged, if any.
	active Handles

	// grabOffset is the signed distance from the handle center to the
	// pointer at the start of the session, kept for the whole session
	// so that the handle does not jump to the pointer.
	grabOffset float32
}

// Active returns the handle being dragged, or [HandleNone].
func (dr Drag) Active() Handles {
	return dr.active
}

// GrabOffset returns the signed distance from the center of the
// active handle to the pointer at the start of the session.
func (dr Drag) GrabOffset() float32 {
	return dr.grabOffset
}

// Dragging returns whether a handle is being dragged.
func (dr Drag) Dragging() bool {
	return dr.active != HandleNone
}

func (dr *Drag) reset() {
	dr.active = HandleNone
	dr.grabOffset = 0
}

// Drag returns the current drag session.
func (f *Fader) Drag() Drag {
	return f.drag
}

// HandleGesture processes one pan gesture event. [events.Begin] starts
// dragging the handle under the pointer, testing the left handle first so
// that it wins when the handles overlap. [events.Change] moves the dragged
// handle, if any, and sends a range change. [events.End] and [events.Cancel]
// stop dragging and keep the handle where it is.
func (f *Fader) HandleGesture(g events.Gesture) {
	switch {
	case g.Phase == events.Begin:
		f.startDrag(g)
	case g.Phase == events.Change:
		if !f.drag.Dragging() {
			return
		}
		f.setPosition(f.drag.active, f.track.ClampPosition(g.Pos.X-f.drag.grabOffset))
		f.sendChange()
	case g.Phase.IsTerminal():
		if f.drag.Dragging() {
			slog.Debug("fader drag stopped", "handle", f.drag.active, "phase", g.Phase)
		}
		f.drag.reset()
	}
}

// startDrag starts a new drag session for the handle hit by the
// pointer, or an empty session if no handle is hit.
func (f *Fader) startDrag(g events.Gesture) {
	f.drag.reset()
	if f.track.IsDegenerate() {
		return
	}
	for _, h := range []Handles{HandleLeft, HandleRight} {
		if f.hitBox(h).ContainsPoint(g.Pos) {
			f.drag.active = h
			f.drag.grabOffset = g.Pos.X - f.Position(h)
			slog.Debug("fader drag started", "handle", h, "grabOffset", f.drag.grabOffset)
			return
		}
	}
}

// hitBox returns the box in which a press grabs the given handle.
func (f *Fader) hitBox(h Handles) math32.Box2 {
	bb := f.HandleBox(h)
	bb.ExpandByScalar(f.touchMargin)
	return bb
}
