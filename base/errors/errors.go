// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides error helpers that log errors with their
// caller, plus the standard library constructors that fader code uses,
// so that one import covers both.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(text string) error {
	return errors.New(text)
}

// Errorf is [fmt.Errorf], exposed here so that callers wrapping
// errors with %w do not also need to import fmt.
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// Join returns an error that wraps the given errors, discarding nils.
// It returns nil if every error is nil.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
