// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/fader/base/errors"
	"cogentcore.org/fader/cli"
	"cogentcore.org/fader/math32"
	"cogentcore.org/fader/math32/minmax"
)

var (
	// ErrDegenerateDomain is returned when the maximum value is not
	// greater than the minimum value, or either is not finite.
	ErrDegenerateDomain = errors.New("fader: degenerate domain")

	// ErrInvalidGeometry is returned for negative or non-finite
	// track dimensions or touch margins.
	ErrInvalidGeometry = errors.New("fader: invalid geometry")

	// ErrInvalidValue is returned for non-finite initial values.
	ErrInvalidValue = errors.New("fader: invalid value")
)

func degenerateDomain(dom minmax.F32) error {
	return errors.Errorf("%w: minimum %g, maximum %g", ErrDegenerateDomain, dom.Min, dom.Max)
}

func invalidGeometry(tr Track) error {
	return errors.Errorf("%w: width %g, handle radius %g, height %g", ErrInvalidGeometry, tr.Width, tr.HandleRadius, tr.Height)
}

// validateDomain returns an error unless Min < Max and both are finite.
func validateDomain(dom minmax.F32) error {
	if !math32.IsFinite(dom.Min) || !math32.IsFinite(dom.Max) || dom.Max <= dom.Min {
		return degenerateDomain(dom)
	}
	return nil
}

// Options are the configuration options for a [Fader].
// They can be loaded from TOML or YAML files with [OpenOptions].
type Options struct {

	// MinValue is the value of the start of the track.
	MinValue float32 `toml:"minValue" yaml:"minValue"`

	// MaxValue is the value of the end of the track.
	// It must be greater than MinValue.
	MaxValue float32 `toml:"maxValue" yaml:"maxValue" default:"100"`

	// HandleRadius is the radius of each handle, in pixels.
	HandleRadius float32 `toml:"handleRadius" yaml:"handleRadius" default:"40"`

	// TrackLength is the width of the track, in pixels. It is
	// typically updated by the host with [Fader.SetTrack] on resize.
	TrackLength float32 `toml:"trackLength" yaml:"trackLength"`

	// TrackHeight is the height of the fader frame, in pixels.
	// Zero means the frame is as tall as a handle.
	TrackHeight float32 `toml:"trackHeight" yaml:"trackHeight"`

	// TouchMargin widens the handle hit boxes on every side, in pixels,
	// so that handles are easier to grab on touch screens.
	TouchMargin float32 `toml:"touchMargin" yaml:"touchMargin"`

	// InitialLeftValue, if set, is the starting value of the left handle
	// instead of MinValue.
	InitialLeftValue *float32 `toml:"initialLeftValue" yaml:"initialLeftValue"`

	// InitialRightValue, if set, is the starting value of the right handle
	// instead of MaxValue.
	InitialRightValue *float32 `toml:"initialRightValue" yaml:"initialRightValue"`
}

// Defaults sets the options to their default values.
func (o *Options) Defaults() {
	*o = Options{}
	cli.SetFromDefaults(o)
}

// Domain returns the value domain of the options.
func (o *Options) Domain() minmax.F32 {
	return minmax.F32{Min: o.MinValue, Max: o.MaxValue}
}

// Track returns the track geometry of the options.
func (o *Options) Track() Track {
	return Track{Width: o.TrackLength, HandleRadius: o.HandleRadius, Height: o.TrackHeight}
}

// Validate returns an error describing the first problem with the options:
// [ErrDegenerateDomain], [ErrInvalidGeometry] or [ErrInvalidValue].
func (o *Options) Validate() error {
	if err := validateDomain(o.Domain()); err != nil {
		return err
	}
	if err := o.Track().validate(); err != nil {
		return err
	}
	if !math32.IsFinite(o.TouchMargin) || o.TouchMargin < 0 {
		return errors.Errorf("%w: touch margin %g", ErrInvalidGeometry, o.TouchMargin)
	}
	for _, v := range []*float32{o.InitialLeftValue, o.InitialRightValue} {
		if v != nil && !math32.IsFinite(*v) {
			return errors.Errorf("%w: initial value %g", ErrInvalidValue, *v)
		}
	}
	return nil
}

// OpenOptions returns the default options overridden by the given
// TOML or YAML files in order, so that later files override settings
// from earlier ones, for example a per-device file on top of a shared one.
func OpenOptions(files ...string) (Options, error) {
	o := Options{}
	o.Defaults()
	if err := cli.OpenFiles(&o, files...); err != nil {
		return o, err
	}
	return o, o.Validate()
}
