// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package engine

import (
	"go.uber.org/zap/zapcore"
)

// Level is the native severity of the external engine. It has no Trace tier.
type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

// Handle identifies one named logger category of the engine.
// Implementations must be safe for concurrent use: callers add no synchronization.
type Handle interface {
	// Write records message at level. origin is the type identity reported as the
	// source of the entry and err, if not nil, is attached unchanged.
	// Any error returned comes from the engine itself.
	Write(origin string, level Level, message string, err error) error
}

// Registry is the named-logger lookup of the engine.
type Registry interface {
	// GetLogger returns the handle for name, or nil when the engine has none.
	GetLogger(name string) Handle
}

// RegistryFunc adapts a plain function to a Registry.
type RegistryFunc func(name string) Handle

// GetLogger calls f(name).
func (f RegistryFunc) GetLogger(name string) Handle {
	return f(name)
}
