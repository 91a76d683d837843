// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package zapengine exposes a zap core as a named-logger registry.
package zapengine

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mia-platform/logbridge/internal/engine"
)

const (
	// SourceKey is the field carrying the origin of every entry.
	SourceKey = "source"

	FormatJSON    = "json"
	FormatConsole = "console"
)

var _ engine.Registry = &Registry{}

// Options configures a Registry built with New.
type Options struct {
	Level  engine.Level
	Format string
	Output io.Writer
}

// Registry hands out handles writing on the same core. Handles only carry their
// name, so the registry keeps no per-name state.
type Registry struct {
	core zapcore.Core
}

// New builds a core from opts and wraps it in a Registry.
// An unknown format falls back to JSON.
func New(opts Options) *Registry {
	var encoder zapcore.Encoder
	switch opts.Format {
	case FormatConsole:
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "time"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	syncer := zapcore.Lock(zapcore.AddSync(opts.Output))
	return NewRegistry(zapcore.NewCore(encoder, syncer, zap.NewAtomicLevelAt(opts.Level)))
}

// NewRegistry wraps an existing core.
func NewRegistry(core zapcore.Core) *Registry {
	return &Registry{core: core}
}

func (r *Registry) GetLogger(name string) engine.Handle {
	return &handle{name: name, core: r.core}
}

// Sync flushes any buffered entry of the underlying core.
func (r *Registry) Sync() error {
	return r.core.Sync()
}

type handle struct {
	name string
	core zapcore.Core
}

// Write goes straight to the core so that write errors reach the caller and a
// fatal entry never terminates the process.
func (h *handle) Write(origin string, level engine.Level, message string, err error) error {
	if !h.core.Enabled(level) {
		return nil
	}

	fields := make([]zapcore.Field, 0, 2)
	fields = append(fields, zap.String(SourceKey, origin))
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	entry := zapcore.Entry{
		LoggerName: h.name,
		Time:       time.Now(),
		Level:      level,
		Message:    message,
	}
	return h.core.Write(entry, fields)
}
