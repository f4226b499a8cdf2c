// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replay runs recorded gesture scripts against a fader.
// A script holds the fader [core.Options] and the gestures to send,
// and replaying it yields every range change in order, so that
// interaction bugs can be reproduced outside of a host application.
package replay

import (
	"fmt"
	"log/slog"

	"cogentcore.org/fader/cli"
	"cogentcore.org/fader/core"
	"cogentcore.org/fader/events"
)

// Script is a fader configuration with a sequence of gestures.
type Script struct {

	// Options are the options of the fader that the gestures are sent to.
	Options core.Options `toml:"options" yaml:"options"`

	// Gestures are the gestures to send, in order.
	Gestures []Step `toml:"gestures" yaml:"gestures"`
}

// Step is one gesture of a [Script].
type Step struct {

	// Phase is the gesture phase: begin, change, end or cancel.
	Phase events.Phases `toml:"phase" yaml:"phase"`

	// X is the pointer position along the track, in pixels.
	X float32 `toml:"x" yaml:"x"`

	// Y is the pointer position across the track, in pixels,
	// measured from the top of the fader frame.
	Y float32 `toml:"y" yaml:"y"`
}

// Gesture returns the step as a gesture event.
func (st Step) Gesture() events.Gesture {
	return events.NewGesture(st.Phase, st.X, st.Y)
}

// Change is a range change that happened during a replay.
type Change struct {

	// Step is the index of the gesture that caused the change.
	Step int

	// Gesture is the gesture that caused the change.
	Gesture events.Gesture

	// Left and Right are the values sent to the listeners.
	Left, Right float32

	// Orientation is the orientation of the fader after the change.
	Orientation core.Orientations
}

func (c Change) String() string {
	return fmt.Sprintf("#%d %v: left %g, right %g (%v)", c.Step, c.Gesture, c.Left, c.Right, c.Orientation)
}

// Open reads a script from the given TOML or YAML file. Options that
// are not in the file keep their defaults.
func Open(file string) (*Script, error) {
	s := &Script{}
	s.Options.Defaults()
	if err := cli.Open(s, file); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if tr := s.Options.Track(); tr.IsDegenerate() {
		slog.Warn("script track is too short for the handles to move, so no drag will start; set trackLength", "file", file, "trackLength", tr.Width, "handleRadius", tr.HandleRadius)
	}
	return s, nil
}

// Validate returns an error if the options are invalid or a gesture
// has no known phase.
func (s *Script) Validate() error {
	if err := s.Options.Validate(); err != nil {
		return err
	}
	for i, st := range s.Gestures {
		if st.Phase == events.UnknownPhase {
			return fmt.Errorf("replay: gesture %d has no phase", i)
		}
	}
	return nil
}

// Run makes a new fader from the script options, sends it all of
// the gestures and returns the fader and the range changes, in order.
func (s *Script) Run() (*core.Fader, []Change, error) {
	f, err := core.New(s.Options)
	if err != nil {
		return nil, nil, err
	}
	var changes []Change
	step := 0
	f.OnRangeChange(func(left, right float32) {
		changes = append(changes, Change{
			Step:        step,
			Gesture:     s.Gestures[step].Gesture(),
			Left:        left,
			Right:       right,
			Orientation: f.Orientation(),
		})
	})
	for i, st := range s.Gestures {
		step = i
		events.Dispatch(f, st.Gesture())
	}
	return f, changes, nil
}
