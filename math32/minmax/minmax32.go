// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a closed interval of float32 values,
// used for fader value domains and handle travel.
package minmax

// F32 is the closed interval [Min, Max] of float32 values.
type F32 struct {
	Min float32
	Max float32
}

// InRange returns whether val is within [Min, Max].
func (mr *F32) InRange(val float32) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min.
func (mr *F32) Range() float32 {
	return mr.Max - mr.Min
}

// Midpoint returns the point halfway between Min and Max.
func (mr *F32) Midpoint() float32 {
	return 0.5 * (mr.Max + mr.Min)
}

// ClipValue returns val limited to [Min, Max]. NaN stays NaN.
func (mr *F32) ClipValue(val float32) float32 {
	switch {
	case val < mr.Min:
		return mr.Min
	case val > mr.Max:
		return mr.Max
	}
	return val
}
