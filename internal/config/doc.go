// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config loads the settings of the logging engine used by the CLI.
// Values come from built-in defaults, then an optional YAML file, then LOGBRIDGE_*
// environment variables, each source overriding the previous one.
package config
