// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mia-platform/logbridge/internal/config"
	"github.com/mia-platform/logbridge/internal/engine"
	"github.com/mia-platform/logbridge/internal/engine/hclogengine"
	"github.com/mia-platform/logbridge/internal/engine/zapengine"
	"github.com/mia-platform/logbridge/internal/logger"
)

// NewProvider assembles the engine described by cfg and returns a logger provider on it,
// together with the function that flushes and releases its output.
func NewProvider(cfg *config.Config, stdout, stderr io.Writer) (logger.Provider, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	output, closeOutput, err := engineOutput(cfg, stdout, stderr)
	if err != nil {
		return nil, nil, err
	}

	threshold := logger.Translate(logger.SeverityFromString(cfg.Level))

	var registry engine.Registry
	closeFn := closeOutput
	switch cfg.Engine {
	case config.EngineHclog:
		registry = hclogengine.New(hclogengine.Options{
			Level:  threshold,
			Format: cfg.Format,
			Output: output,
		})
	default:
		zapRegistry := zapengine.New(zapengine.Options{
			Level:  threshold,
			Format: cfg.Format,
			Output: output,
		})
		registry = zapRegistry
		if cfg.Output == config.OutputFile {
			closeFn = func() error {
				if err := zapRegistry.Sync(); err != nil {
					return errors.Wrap(err, "flushing log file")
				}
				return closeOutput()
			}
		}
	}

	return logger.NewFactory(registry), closeFn, nil
}

// engineOutput returns the writer selected by cfg.Output. Only files need to be closed.
func engineOutput(cfg *config.Config, stdout, stderr io.Writer) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Output {
	case config.OutputStdout:
		return stdout, noop, nil
	case config.OutputFile:
		if err := os.MkdirAll(filepath.Dir(cfg.File.Path), 0o750); err != nil {
			return nil, nil, errors.Wrapf(err, "creating log directory for %s", cfg.File.Path)
		}

		file := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSize,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAge,
			Compress:   cfg.File.Compress,
		}
		return file, func() error {
			return errors.Wrap(file.Close(), "closing log file")
		}, nil
	default:
		return stderr, noop, nil
	}
}
