// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/fader/math32"
	"cogentcore.org/fader/math32/minmax"
)

// Track is the geometry of a fader track, in pixels. The handles are
// circles of [Track.HandleRadius] whose centers travel within
// [HandleRadius, Width - HandleRadius], so that a handle never draws
// outside of the track. A track with Width <= 2*HandleRadius has no room
// for travel and is degenerate: both handles sit at its midpoint.
type Track struct {

	// Width is the length of the track along the sliding direction.
	Width float32

	// HandleRadius is the radius of each handle.
	HandleRadius float32

	// Height is the height of the fader frame, used only to center the
	// handle hit boxes vertically. Zero means the frame is exactly as
	// tall as a handle.
	Height float32
}

// IsDegenerate returns whether the track is too short for the handles
// to move at all.
func (tr Track) IsDegenerate() bool {
	return tr.Width <= 2*tr.HandleRadius
}

// Midpoint returns the center of the track, where both handles sit
// on a degenerate track.
func (tr Track) Midpoint() float32 {
	return 0.5 * tr.Width
}

// Travel returns the closed interval that handle centers are clamped into.
func (tr Track) Travel() minmax.F32 {
	if tr.IsDegenerate() {
		mid := tr.Midpoint()
		return minmax.F32{Min: mid, Max: mid}
	}
	return minmax.F32{Min: tr.HandleRadius, Max: tr.Width - tr.HandleRadius}
}

// usableWidth is the length of the travel interval.
func (tr Track) usableWidth() float32 {
	return tr.Width - 2*tr.HandleRadius
}

// ClampPosition clamps the given raw handle center position into the
// travel interval. Both ends of the interval are themselves valid results,
// and NaN clamps to the start. On a degenerate track every position
// clamps to the midpoint.
func (tr Track) ClampPosition(raw float32) float32 {
	if tr.IsDegenerate() {
		return tr.Midpoint()
	}
	if math32.IsNaN(raw) {
		return tr.HandleRadius
	}
	return math32.Clamp(raw, tr.HandleRadius, tr.Width-tr.HandleRadius)
}

// ValueForPosition returns the value in the given domain for the
// given handle center position, rounded to the nearest integer
// with ties to even. The domain must have a nonzero range.
// A degenerate track maps to the rounded domain midpoint.
func (tr Track) ValueForPosition(pos float32, dom minmax.F32) float32 {
	if tr.IsDegenerate() {
		return math32.RoundToEven(dom.Midpoint())
	}
	scale := tr.usableWidth() / dom.Range()
	startShift := dom.Min * scale
	return math32.RoundToEven((startShift + (pos - tr.HandleRadius)) / scale)
}

// PositionForValue is the inverse of [Track.ValueForPosition], used to
// place a handle for a value set programmatically. The result is clamped
// with [Track.ClampPosition], so values outside of the domain land on
// the nearest end of the track.
func (tr Track) PositionForValue(value float32, dom minmax.F32) float32 {
	if tr.IsDegenerate() {
		return tr.Midpoint()
	}
	shift := tr.HandleRadius + (value-dom.Min)*(tr.usableWidth()/dom.Range())
	return tr.ClampPosition(shift)
}

// HandleBox returns the bounding box of a handle centered at the given
// position, centered vertically in the frame.
func (tr Track) HandleBox(pos float32) math32.Box2 {
	d := 2 * tr.HandleRadius
	h := tr.Height
	if h <= 0 {
		h = d
	}
	return math32.B2FromCenterAndSize(math32.Vec2(pos, 0.5*h), math32.Vector2Scalar(d))
}

// validate returns an error if any dimension is negative or not finite.
func (tr Track) validate() error {
	for _, v := range []float32{tr.Width, tr.HandleRadius, tr.Height} {
		if !math32.IsFinite(v) || v < 0 {
			return invalidGeometry(tr)
		}
	}
	return nil
}
