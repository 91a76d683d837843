// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"github.com/mia-platform/logbridge/internal/engine"
)

var (
	// nullProvider hands out loggers that discard all log messages.
	nullProvider Provider = NewFactory(engine.RegistryFunc(func(string) engine.Handle {
		return nopHandle{}
	}))
)

// Provider creates named loggers.
type Provider interface {
	// CreateLogger returns a new Logger for the category name.
	CreateLogger(name string) (Logger, error)
}

// Make sure that Factory is a Provider.
var _ Provider = &Factory{}

// Factory creates loggers backed by the handles of an engine registry.
type Factory struct {
	registry engine.Registry
}

// NewFactory returns a Factory looking up handles in registry.
func NewFactory(registry engine.Registry) *Factory {
	return &Factory{registry: registry}
}

// CreateLogger looks up name in the registry once and wraps the handle. name is
// handed to the engine as is; a missing handle returns the *ArgumentError of NewAdapter.
func (f *Factory) CreateLogger(name string) (Logger, error) {
	return NewAdapter(f.registry.GetLogger(name))
}
