// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"

	"cogentcore.org/fader/math32"
	"cogentcore.org/fader/math32/minmax"
)

// Fader is a dual-handle range selector: a horizontal track with a left
// and a right handle that select a range within a domain of values.
// The handles may cross, in which case the range is presented as
// [Outside] instead of [Inside].
//
// Every mutation recomputes the handle value, the range and the
// orientation, in that order, and then calls the [Fader.OnRangeChange]
// listeners synchronously, once per mutation, even if the values did
// not change. A Fader is not safe for concurrent use, and listeners
// must not mutate the fader that is calling them.
type Fader struct {

	// track is the current track geometry.
	track Track

	// domain is the range of values that the track maps onto.
	domain minmax.F32

	// touchMargin widens the handle hit boxes.
	touchMargin float32

	// left and right are the two handles.
	left, right handle

	// orientation is derived from the handle values on every mutation.
	orientation Orientations

	// drag is the current drag session.
	drag Drag

	// listeners are called on every range change.
	listeners Listeners
}

// handle is the state of one handle: the position of its center and
// the value derived from that position.
type handle struct {
	pos   float32
	value float32
}

// New returns a new [Fader] for the given options, with the left handle
// at the minimum value and the right handle at the maximum value, unless
// initial values are given. It returns an error if the options are invalid.
func New(opts Options) (*Fader, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	f := &Fader{track: opts.Track(), touchMargin: opts.TouchMargin}
	f.resetDomain(opts.Domain())
	if opts.InitialLeftValue != nil {
		f.placeValue(HandleLeft, *opts.InitialLeftValue)
	}
	if opts.InitialRightValue != nil {
		f.placeValue(HandleRight, *opts.InitialRightValue)
	}
	return f, nil
}

// Track returns the current track geometry.
func (f *Fader) Track() Track {
	return f.track
}

// Domain returns the current value domain.
func (f *Fader) Domain() minmax.F32 {
	return f.domain
}

// TouchMargin returns the extra hit box margin around each handle.
func (f *Fader) TouchMargin() float32 {
	return f.touchMargin
}

// Range returns the current values of the left and right handles.
func (f *Fader) Range() (left, right float32) {
	return f.left.value, f.right.value
}

// Value returns the current value of the given handle.
// It returns 0 for [HandleNone].
func (f *Fader) Value(h Handles) float32 {
	if hs := f.handle(h); hs != nil {
		return hs.value
	}
	return 0
}

// Position returns the current center position of the given handle.
// It returns 0 for [HandleNone].
func (f *Fader) Position(h Handles) float32 {
	if hs := f.handle(h); hs != nil {
		return hs.pos
	}
	return 0
}

// Orientation returns how the current range is presented: [Inside] when
// the left value is at most the right value, and [Outside] otherwise.
func (f *Fader) Orientation() Orientations {
	return f.orientation
}

// HandleBox returns the bounding box of the given handle,
// without the touch margin.
func (f *Fader) HandleBox(h Handles) math32.Box2 {
	return f.track.HandleBox(f.Position(h))
}

// Segments returns the highlighted parts of the track for the current
// orientation: the single segment between the handle centers for [Inside],
// or the segments from the track start to the right handle and from the
// left handle to the track end for [Outside].
func (f *Fader) Segments() []Segment {
	if f.orientation == Inside {
		return []Segment{{Start: f.left.pos, End: f.right.pos}}
	}
	return []Segment{
		{Start: 0, End: f.right.pos},
		{Start: f.left.pos, End: f.track.Width},
	}
}

// OnRangeChange adds a listener that is called with the left and right
// values on every mutation, after all previously added listeners.
func (f *Fader) OnRangeChange(fun func(left, right float32)) *Fader {
	f.listeners.Add(fun)
	return f
}

// SetLeftPosition moves the left handle to the given center position,
// clamped into the track travel, and sends a range change.
func (f *Fader) SetLeftPosition(pos float32) {
	f.setPosition(HandleLeft, f.track.ClampPosition(pos))
	f.sendChange()
}

// SetRightPosition moves the right handle to the given center position,
// clamped into the track travel, and sends a range change.
func (f *Fader) SetRightPosition(pos float32) {
	f.setPosition(HandleRight, f.track.ClampPosition(pos))
	f.sendChange()
}

// SetValues moves both handles to the positions of the given values and
// sends one range change per handle. The resulting values are the rounded
// values for those positions, so values outside of the domain end up at
// the nearest end of it. On a degenerate track the handles stay at the
// midpoint and keep the given values, clipped to the domain.
func (f *Fader) SetValues(left, right float32) {
	f.placeValue(HandleLeft, left)
	f.sendChange()
	f.placeValue(HandleRight, right)
	f.sendChange()
}

// SetMin sets the minimum value of the domain; see [Fader.SetDomain].
func (f *Fader) SetMin(v float32) error {
	return f.SetDomain(v, f.domain.Max)
}

// SetMax sets the maximum value of the domain; see [Fader.SetDomain].
func (f *Fader) SetMax(v float32) error {
	return f.SetDomain(f.domain.Min, v)
}

// SetDomain sets the domain of values, resets the handles to the two
// ends of the track with the left value at mn and the right value at mx,
// and sends a range change. It returns [ErrDegenerateDomain] and leaves
// the fader unchanged unless mn < mx.
func (f *Fader) SetDomain(mn, mx float32) error {
	dom := minmax.F32{Min: mn, Max: mx}
	if err := validateDomain(dom); err != nil {
		return err
	}
	f.resetDomain(dom)
	f.sendChange()
	return nil
}

// SetTrack sets the track geometry, typically when the host is resized.
// The handles are moved to the positions of their current values, which
// do not change, so no range change is sent. A drag in progress ends,
// because its grab offset was measured on the old geometry. It returns
// [ErrInvalidGeometry] and leaves the fader unchanged for negative or
// non-finite dimensions.
func (f *Fader) SetTrack(tr Track) error {
	if err := tr.validate(); err != nil {
		return err
	}
	if f.drag.Dragging() {
		slog.Debug("fader drag stopped by resize", "handle", f.drag.active)
	}
	f.drag.reset()
	f.track = tr
	f.left.pos = tr.PositionForValue(f.left.value, f.domain)
	f.right.pos = tr.PositionForValue(f.right.value, f.domain)
	return nil
}

// resetDomain sets the domain and puts the handles at the ends of the
// track with exactly the domain bounds as values.
func (f *Fader) resetDomain(dom minmax.F32) {
	f.domain = dom
	travel := f.track.Travel()
	f.left = handle{pos: travel.Min, value: dom.Min}
	f.right = handle{pos: travel.Max, value: dom.Max}
	f.orientation = orientationOf(f.left.value, f.right.value)
}

func (f *Fader) handle(h Handles) *handle {
	switch h {
	case HandleLeft:
		return &f.left
	case HandleRight:
		return &f.right
	}
	return nil
}

// placeValue puts the given handle at the position of the given value,
// without sending a range change. On a degenerate track every value maps
// to the midpoint, so the value is kept, rounded and clipped to the domain,
// for a later [Fader.SetTrack] to place.
func (f *Fader) placeValue(h Handles, v float32) {
	if !f.track.IsDegenerate() {
		f.setPosition(h, f.track.PositionForValue(v, f.domain))
		return
	}
	hs := f.handle(h)
	if hs == nil {
		return
	}
	hs.pos = f.track.Midpoint()
	hs.value = math32.RoundToEven(f.domain.ClipValue(v))
	f.orientation = orientationOf(f.left.value, f.right.value)
}

// setPosition sets the position of the given handle, which must already
// be clamped, and recomputes its value and the orientation.
func (f *Fader) setPosition(h Handles, pos float32) {
	hs := f.handle(h)
	if hs == nil {
		return
	}
	hs.pos = pos
	hs.value = f.track.ValueForPosition(pos, f.domain)
	f.orientation = orientationOf(f.left.value, f.right.value)
}

// sendChange calls the listeners with the current range.
func (f *Fader) sendChange() {
	slog.Debug("fader range changed", "left", f.left.value, "right", f.right.value, "orientation", f.orientation)
	f.listeners.Call(f.left.value, f.right.value)
}
