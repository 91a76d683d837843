// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mia-platform/logbridge/internal/logger"
)

const (
	EngineZap   = "zap"
	EngineHclog = "hclog"

	FormatJSON    = "json"
	FormatConsole = "console"

	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"

	envPrefix = "LOGBRIDGE_"
)

var (
	// ErrParsing reports failures that occur while decoding the configuration file.
	ErrParsing = errors.New("error parsing")
	// ErrConfigNotValid reports a configuration with unsupported values.
	ErrConfigNotValid = errors.New("configuration not valid")
)

// Config holds the settings of the logging engine.
type Config struct {
	Engine string     `yaml:"engine" env:"ENGINE"`
	Level  string     `yaml:"level" env:"LEVEL"`
	Format string     `yaml:"format" env:"FORMAT"`
	Output string     `yaml:"output" env:"OUTPUT"`
	File   FileConfig `yaml:"file" envPrefix:"FILE_"`
}

// FileConfig holds the rotation settings used when Output is "file".
type FileConfig struct {
	Path       string `yaml:"path" env:"PATH"`
	MaxSize    int    `yaml:"maxSize" env:"MAX_SIZE"`
	MaxBackups int    `yaml:"maxBackups" env:"MAX_BACKUPS"`
	MaxAge     int    `yaml:"maxAge" env:"MAX_AGE"`
	Compress   bool   `yaml:"compress" env:"COMPRESS"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Engine: EngineZap,
		Level:  "info",
		Format: FormatJSON,
		Output: OutputStderr,
		File: FileConfig{
			MaxSize:    100, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		},
	}
}

// Load builds the configuration from the defaults, the YAML file at path when it is
// not empty, and the environment.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		if err := config.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotValid, err.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadDotEnv adds the variables of the dotenv file at path to the environment without
// overriding existing ones. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w %q: %w", ErrParsing, path, err)
	}
	return nil
}

func (c *Config) readFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	// An empty file keeps the defaults.
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w %q: %w", ErrParsing, path, err)
	}
	return nil
}

// Validate reports every unsupported value at once.
func (c *Config) Validate() error {
	configErrors := make([]string, 0)

	switch c.Engine {
	case EngineZap, EngineHclog:
	default:
		configErrors = append(configErrors, fmt.Sprintf("engine %q is not one of %s, %s", c.Engine, EngineZap, EngineHclog))
	}

	if _, ok := logger.ParseSeverity(c.Level); !ok {
		configErrors = append(configErrors, fmt.Sprintf("level %q is not one of trace, debug, info, warn, error, fatal", c.Level))
	}

	switch c.Format {
	case FormatJSON, FormatConsole:
	default:
		configErrors = append(configErrors, fmt.Sprintf("format %q is not one of %s, %s", c.Format, FormatJSON, FormatConsole))
	}

	switch c.Output {
	case OutputStderr, OutputStdout:
	case OutputFile:
		if c.File.Path == "" {
			configErrors = append(configErrors, "file path is required when output is file")
		}
	default:
		configErrors = append(configErrors, fmt.Sprintf("output %q is not one of %s, %s, %s", c.Output, OutputStderr, OutputStdout, OutputFile))
	}

	if c.File.MaxSize < 0 || c.File.MaxBackups < 0 || c.File.MaxAge < 0 {
		configErrors = append(configErrors, "file rotation values must not be negative")
	}

	if len(configErrors) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigNotValid, strings.Join(configErrors, ", "))
	}
	return nil
}
