// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"fmt"
)

// ErrNilHandle is matched by the ArgumentError returned for a missing engine handle.
var ErrNilHandle = errors.New("logger handle is nil")

// Ensure ArgumentError implements the error interface.
var _ error = &ArgumentError{}

// ArgumentError signals an invalid argument passed to a constructor.
type ArgumentError struct {
	Argument string
	err      error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.err)
}

func (e *ArgumentError) Unwrap() error {
	return e.err
}
