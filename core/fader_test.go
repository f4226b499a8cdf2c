// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"cogentcore.org/fader/math32"
	"cogentcore.org/fader/math32/minmax"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rangeCall struct {
	Left, Right float32
}

type recorder struct {
	calls []rangeCall
}

func (r *recorder) listen(left, right float32) {
	r.calls = append(r.calls, rangeCall{left, right})
}

func testOptions() Options {
	return Options{MinValue: 0, MaxValue: 24, HandleRadius: 25, TrackLength: 300}
}

func newTestFader(t *testing.T, opts Options) (*Fader, *recorder) {
	t.Helper()
	f, err := New(opts)
	require.NoError(t, err)
	r := &recorder{}
	f.OnRangeChange(r.listen)
	return f, r
}

func assertCalls(t *testing.T, want []rangeCall, r *recorder) {
	t.Helper()
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("range change calls mismatch (-want +got):\n%s", diff)
	}
}

func TestNew(t *testing.T) {
	f, r := newTestFader(t, testOptions())
	left, right := f.Range()
	assert.Equal(t, float32(0), left)
	assert.Equal(t, float32(24), right)
	assert.Equal(t, float32(25), f.Position(HandleLeft))
	assert.Equal(t, float32(275), f.Position(HandleRight))
	assert.Equal(t, Inside, f.Orientation())
	assert.Equal(t, minmax.F32{Min: 0, Max: 24}, f.Domain())
	assert.Equal(t, Track{Width: 300, HandleRadius: 25}, f.Track())
	assert.False(t, f.Drag().Dragging())
	assert.Empty(t, r.calls)
}

func TestNewNonIntegerBounds(t *testing.T) {
	opts := testOptions()
	opts.MinValue = 0.5
	opts.MaxValue = 2.5
	f, _ := newTestFader(t, opts)
	left, right := f.Range()
	assert.Equal(t, float32(0.5), left)
	assert.Equal(t, float32(2.5), right)
}

func TestNewInitialValues(t *testing.T) {
	opts := testOptions()
	l, r := float32(6), float32(18)
	opts.InitialLeftValue = &l
	opts.InitialRightValue = &r
	f, rec := newTestFader(t, opts)
	assert.Equal(t, float32(6), f.Value(HandleLeft))
	assert.Equal(t, float32(18), f.Value(HandleRight))
	assert.InDelta(t, 87.5, f.Position(HandleLeft), 1e-3)
	assert.InDelta(t, 212.5, f.Position(HandleRight), 1e-3)
	assert.Empty(t, rec.calls)
}

func TestNewErrors(t *testing.T) {
	opts := testOptions()
	opts.MaxValue = 0
	_, err := New(opts)
	assert.ErrorIs(t, err, ErrDegenerateDomain)

	opts = testOptions()
	opts.HandleRadius = -1
	_, err = New(opts)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestSetPositions(t *testing.T) {
	f, r := newTestFader(t, testOptions())
	f.SetLeftPosition(25)
	f.SetRightPosition(275)
	f.SetLeftPosition(400)
	assert.Equal(t, float32(275), f.Position(HandleLeft))
	f.SetRightPosition(-20)
	assert.Equal(t, float32(25), f.Position(HandleRight))
	assertCalls(t, []rangeCall{{0, 24}, {0, 24}, {24, 24}, {24, 0}}, r)
	assert.Equal(t, Outside, f.Orientation())
}

func TestOneCallPerMutation(t *testing.T) {
	f, r := newTestFader(t, testOptions())
	f.SetLeftPosition(129)
	f.SetLeftPosition(129)
	f.SetLeftPosition(129.2)
	assertCalls(t, []rangeCall{{10, 24}, {10, 24}, {10, 24}}, r)
}

func TestListenerOrder(t *testing.T) {
	f, _ := newTestFader(t, testOptions())
	var order []string
	f.OnRangeChange(func(left, right float32) { order = append(order, "second") }).
		OnRangeChange(func(left, right float32) { order = append(order, "third") })
	f.SetRightPosition(150)
	assert.Equal(t, []string{"second", "third"}, order)
}

func TestOrientation(t *testing.T) {
	f, r := newTestFader(t, testOptions())
	f.SetLeftPosition(129)
	assert.Equal(t, Inside, f.Orientation())
	f.SetRightPosition(129)
	assert.Equal(t, Inside, f.Orientation(), "equal values are inside")
	f.SetRightPosition(77)
	assert.Equal(t, Outside, f.Orientation())
	f.SetRightPosition(140)
	assert.Equal(t, Inside, f.Orientation())
	assertCalls(t, []rangeCall{{10, 24}, {10, 10}, {10, 5}, {10, 11}}, r)
}

func TestSegments(t *testing.T) {
	f, _ := newTestFader(t, testOptions())
	assert.Equal(t, []Segment{{Start: 25, End: 275}}, f.Segments())

	f.SetLeftPosition(200)
	f.SetRightPosition(100)
	assert.Equal(t, Outside, f.Orientation())
	assert.Equal(t, []Segment{{Start: 0, End: 100}, {Start: 200, End: 300}}, f.Segments())
}

func TestSetValues(t *testing.T) {
	f, r := newTestFader(t, testOptions())
	f.SetValues(12, 3)
	assertCalls(t, []rangeCall{{12, 24}, {12, 3}}, r)
	assert.InDelta(t, 150, f.Position(HandleLeft), 1e-3)
	assert.Equal(t, Outside, f.Orientation())

	f.SetValues(-5, 50)
	left, right := f.Range()
	assert.Equal(t, float32(0), left)
	assert.Equal(t, float32(24), right)
}

func TestSetDomain(t *testing.T) {
	f, r := newTestFader(t, testOptions())
	f.SetValues(6, 18)
	r.calls = nil

	require.NoError(t, f.SetMax(48))
	require.NoError(t, f.SetMin(-48))
	assertCalls(t, []rangeCall{{0, 48}, {-48, 48}}, r)
	assert.Equal(t, float32(25), f.Position(HandleLeft))
	assert.Equal(t, float32(275), f.Position(HandleRight))

	require.NoError(t, f.SetDomain(100, 200))
	left, right := f.Range()
	assert.Equal(t, float32(100), left)
	assert.Equal(t, float32(200), right)
}

func TestSetDomainErrors(t *testing.T) {
	f, r := newTestFader(t, testOptions())
	f.SetLeftPosition(129)
	r.calls = nil

	assert.ErrorIs(t, f.SetMin(24), ErrDegenerateDomain)
	assert.ErrorIs(t, f.SetMax(-1), ErrDegenerateDomain)
	assert.ErrorIs(t, f.SetDomain(0, math32.Inf(1)), ErrDegenerateDomain)
	assert.Empty(t, r.calls)
	assert.Equal(t, float32(10), f.Value(HandleLeft))
	assert.Equal(t, minmax.F32{Min: 0, Max: 24}, f.Domain())
}

func TestSetTrack(t *testing.T) {
	f, r := newTestFader(t, testOptions())
	f.SetValues(6, 18)
	r.calls = nil

	require.NoError(t, f.SetTrack(Track{Width: 600, HandleRadius: 50}))
	assert.InDelta(t, 175, f.Position(HandleLeft), 1e-3)
	assert.InDelta(t, 425, f.Position(HandleRight), 1e-3)
	left, right := f.Range()
	assert.Equal(t, float32(6), left)
	assert.Equal(t, float32(18), right)
	assert.Empty(t, r.calls)

	assert.ErrorIs(t, f.SetTrack(Track{Width: -5}), ErrInvalidGeometry)
	assert.Equal(t, float32(600), f.Track().Width)
}

func TestDegenerateTrackFader(t *testing.T) {
	opts := testOptions()
	opts.TrackLength = 40
	f, r := newTestFader(t, opts)
	assert.Equal(t, float32(20), f.Position(HandleLeft))
	assert.Equal(t, float32(20), f.Position(HandleRight))
	left, right := f.Range()
	assert.Equal(t, float32(0), left)
	assert.Equal(t, float32(24), right)

	require.NoError(t, f.SetTrack(Track{Width: 10, HandleRadius: 25}))
	assert.Equal(t, float32(5), f.Position(HandleLeft))
	assert.Equal(t, float32(5), f.Position(HandleRight))
	assert.Empty(t, r.calls)

	require.NoError(t, f.SetTrack(Track{Width: 300, HandleRadius: 25}))
	assert.Equal(t, float32(25), f.Position(HandleLeft))
	assert.Equal(t, float32(275), f.Position(HandleRight))
}

func TestInitialValuesBeforeLayout(t *testing.T) {
	opts := testOptions()
	opts.TrackLength = 0
	l, r := float32(6), float32(18)
	opts.InitialLeftValue = &l
	opts.InitialRightValue = &r
	f, rec := newTestFader(t, opts)
	left, right := f.Range()
	assert.Equal(t, float32(6), left)
	assert.Equal(t, float32(18), right)
	assert.Equal(t, float32(0), f.Position(HandleLeft))
	assert.Equal(t, Inside, f.Orientation())

	require.NoError(t, f.SetTrack(Track{Width: 300, HandleRadius: 25}))
	left, right = f.Range()
	assert.Equal(t, float32(6), left)
	assert.Equal(t, float32(18), right)
	assert.InDelta(t, 87.5, f.Position(HandleLeft), 1e-3)
	assert.InDelta(t, 212.5, f.Position(HandleRight), 1e-3)
	assert.Empty(t, rec.calls)
}

func TestInitialValuesClippedBeforeLayout(t *testing.T) {
	opts := testOptions()
	opts.TrackLength = 0
	l, r := float32(-3), float32(30.4)
	opts.InitialLeftValue = &l
	opts.InitialRightValue = &r
	f, _ := newTestFader(t, opts)
	left, right := f.Range()
	assert.Equal(t, float32(0), left)
	assert.Equal(t, float32(24), right)
}

func TestSetValuesDegenerateTrack(t *testing.T) {
	opts := testOptions()
	opts.TrackLength = 40
	f, r := newTestFader(t, opts)
	f.SetValues(18, 6.5)
	assertCalls(t, []rangeCall{{18, 24}, {18, 6}}, r)
	assert.Equal(t, Outside, f.Orientation())
	assert.Equal(t, float32(20), f.Position(HandleRight))

	require.NoError(t, f.SetTrack(Track{Width: 300, HandleRadius: 25}))
	assert.InDelta(t, 212.5, f.Position(HandleLeft), 1e-3)
	assert.InDelta(t, 87.5, f.Position(HandleRight), 1e-3)
}

func TestHandleNone(t *testing.T) {
	f, _ := newTestFader(t, testOptions())
	assert.Equal(t, float32(0), f.Value(HandleNone))
	assert.Equal(t, float32(0), f.Position(HandleNone))
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "Left", HandleLeft.String())
	assert.Equal(t, "Right", HandleRight.String())
	assert.Equal(t, "None", HandleNone.String())
	assert.Equal(t, "7", Handles(7).String())
	assert.Equal(t, "Inside", Inside.String())
	assert.Equal(t, "Outside", Outside.String())
	assert.Equal(t, "3", Orientations(3).String())
}
