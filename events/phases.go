// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strconv"
	"strings"
)

var phasesNames = map[Phases]string{UnknownPhase: `UnknownPhase`, Begin: `Begin`, Change: `Change`, End: `End`, Cancel: `Cancel`}

// PhasesValues returns all possible values for the type Phases.
func PhasesValues() []Phases { return []Phases{UnknownPhase, Begin, Change, End, Cancel} }

// String returns the string representation of this Phases value.
func (ph Phases) String() string {
	if s, ok := phasesNames[ph]; ok {
		return s
	}
	return strconv.FormatInt(int64(ph), 10)
}

// SetString sets the Phases value from its string representation,
// and returns an error if the string is invalid. Matching is case
// insensitive, so "begin" and "Begin" are both accepted.
func (ph *Phases) SetString(s string) error {
	for v, name := range phasesNames {
		if strings.EqualFold(name, s) {
			*ph = v
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Phases", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (ph Phases) MarshalText() ([]byte, error) { return []byte(ph.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (ph *Phases) UnmarshalText(text []byte) error { return ph.SetString(string(text)) }
