// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is the float32 geometry used by faders: scalar
// helpers over chewxy/math32, points and hit boxes.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// Inf returns positive infinity if sign >= 0 and negative infinity otherwise.
func Inf(sign int) float32 {
	return math32.Inf(sign)
}

// NaN returns a float32 not-a-number value.
func NaN() float32 {
	return math32.NaN()
}

// IsInf reports whether x is an infinity with the given sign,
// or either infinity for sign 0.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// IsNaN reports whether x is not-a-number.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	return !IsNaN(x) && !IsInf(x, 0)
}

// RoundToEven returns the nearest integer to x, rounding ties to even,
// so that 0.5 rounds to 0 and 1.5 rounds to 2. The rounding is done in
// float64, which represents every float32 exactly.
func RoundToEven(x float32) float32 {
	return float32(math.RoundToEven(float64(x)))
}

// Clamp returns x limited to the closed interval [a, b].
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
