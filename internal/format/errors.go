// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package format

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every error returned while rendering a template.
var ErrFormat = errors.New("input string was not in a correct format")

// Ensure Error implements the error interface.
var _ error = &Error{}

// Error reports where and why a template could not be rendered.
type Error struct {
	Template string
	Offset   int
	Reason   string
}

func newError(template string, offset int, reason string) *Error {
	return &Error{
		Template: template,
		Offset:   offset,
		Reason:   reason,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at offset %d of %q", ErrFormat, e.Reason, e.Offset, e.Template)
}

func (e *Error) Unwrap() error {
	return ErrFormat
}
