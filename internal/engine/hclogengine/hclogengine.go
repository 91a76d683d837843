// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package hclogengine exposes an hclog logger as a named-logger registry.
package hclogengine

import (
	"io"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/mia-platform/logbridge/internal/engine"
)

const (
	// SourceKey is the argument carrying the origin of every entry.
	SourceKey = "source"
	errorKey  = "error"

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

// Registry derives one named hclog logger per lookup from the same root.
// Nothing is kept per name, so callers may use unbounded sets of names.
type Registry struct {
	root hclog.Logger
}

// New builds the root hclog logger from opts.
func New(opts Options) *Registry {
	return NewRegistry(hclog.New(&hclog.LoggerOptions{
		JSONFormat: opts.Format != FormatConsole,
		Output:     opts.Output,
		TimeFn:     time.Now,
		Level:      convertedLevel(opts.Level),
	}))
}

// NewRegistry wraps an existing root logger.
func NewRegistry(root hclog.Logger) *Registry {
	return &Registry{root: root}
}

func (r *Registry) GetLogger(name string) engine.Handle {
	if name == "" {
		return &handle{log: r.root}
	}
	return &handle{log: r.root.ResetNamed(name)}
}

// convertedLevel maps the engine level on hclog. hclog has no fatal tier, so
// everything above error is written as error.
func convertedLevel(level engine.Level) hclog.Level {
	switch {
	case level <= engine.DebugLevel:
		return hclog.Debug
	case level == engine.InfoLevel:
		return hclog.Info
	case level == engine.WarnLevel:
		return hclog.Warn
	default:
		return hclog.Error
	}
}

type handle struct {
	log hclog.Logger
}

func (h *handle) Write(origin string, level engine.Level, message string, err error) error {
	args := []interface{}{SourceKey, origin}
	if err != nil {
		args = append(args, errorKey, err)
	}

	h.log.Log(convertedLevel(level), message, args...)
	return nil
}
