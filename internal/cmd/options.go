// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"

	"github.com/mia-platform/logbridge/internal/format"
	"github.com/mia-platform/logbridge/internal/logger"
)

// emitOptions holds the options set for the current emit function.
type emitOptions struct {
	name      string
	severity  logger.Severity
	err       error
	provider  format.Provider
	message   string
	arguments []any
}

// validate validates the emit options and returns an error if something is wrong.
func (o *emitOptions) validate() error {
	if o.message == "" {
		return errNoArguments
	}

	return nil
}

// execute creates the named logger from the provider in ctx and writes the entry
// using the call shape matching the options.
func (o *emitOptions) execute(ctx context.Context) error {
	log, err := logger.ProviderFromContext(ctx).CreateLogger(o.name)
	if err != nil {
		return err
	}

	if err := logger.FromContext(ctx).Debug("emitting {0} entry on logger {1}", o.severity, o.name); err != nil {
		return err
	}

	switch {
	case o.err != nil && o.provider != nil:
		return log.LogErrWith(o.severity, o.err, o.provider, o.message, o.arguments...)
	case o.err != nil:
		return log.LogErr(o.severity, o.err, o.message, o.arguments...)
	case o.provider != nil:
		return log.LogWith(o.severity, o.provider, o.message, o.arguments...)
	default:
		return log.Log(o.severity, o.message, o.arguments...)
	}
}
