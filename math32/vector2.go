// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector2 is a point in fader-local coordinates, or a 2D size.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with both components set to s.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{s, s}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vec2(v.X+o.X, v.Y+o.Y)
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vec2(v.X-o.X, v.Y-o.Y)
}

// MulScalar returns v with both components multiplied by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// SetAddScalar adds s to both components.
func (v *Vector2) SetAddScalar(s float32) {
	v.X += s
	v.Y += s
}

// SetSubScalar subtracts s from both components.
func (v *Vector2) SetSubScalar(s float32) {
	v.X -= s
	v.Y -= s
}
