// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 is an axis-aligned box from its Min corner to its Max corner,
// used for handle bounds and hit regions.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] with the given corners.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2FromCenterAndSize returns a new [Box2] of the given size
// centered on the given point.
func B2FromCenterAndSize(center, size Vector2) Box2 {
	b := Box2{}
	b.SetFromCenterAndSize(center, size)
	return b
}

// ExpandByScalar grows the box by s on every side.
func (b *Box2) ExpandByScalar(s float32) {
	b.Min.SetSubScalar(s)
	b.Max.SetAddScalar(s)
}

// SetFromCenterAndSize sets the box to the given size centered on the given point.
func (b *Box2) SetFromCenterAndSize(center, size Vector2) {
	half := size.MulScalar(0.5)
	b.Min = center.Sub(half)
	b.Max = center.Add(half)
}

// Center returns the center point of the box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsPoint returns whether the point is inside the box.
// Points on the edges are inside.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
