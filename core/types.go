// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "strconv"

// Handles identifies one of the two fader handles.
type Handles int32

const (
	// HandleNone is no handle, for example when a drag
	// started away from both handles.
	HandleNone Handles = iota

	// HandleLeft is the handle that starts at the minimum value.
	HandleLeft

	// HandleRight is the handle that starts at the maximum value.
	HandleRight
)

func (h Handles) String() string {
	switch h {
	case HandleNone:
		return "None"
	case HandleLeft:
		return "Left"
	case HandleRight:
		return "Right"
	}
	return strconv.FormatInt(int64(h), 10)
}

// Orientations are the two ways of presenting the selected range.
type Orientations int32

const (
	// Inside is when the left value is at most the right value:
	// the range is the single segment between the handles.
	Inside Orientations = iota

	// Outside is when the handles have crossed and the left value
	// exceeds the right value: the range is inverted and covers
	// the track from its start to the right handle and from the
	// left handle to its end.
	Outside
)

func (o Orientations) String() string {
	switch o {
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	}
	return strconv.FormatInt(int64(o), 10)
}

// orientationOf returns the orientation for the given values.
func orientationOf(left, right float32) Orientations {
	if left <= right {
		return Inside
	}
	return Outside
}

// Segment is a highlighted part of the track, from Start to End in pixels.
type Segment struct {
	Start float32
	End   float32
}
