// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"strings"

	"github.com/mia-platform/logbridge/internal/engine"
)

//go:generate ${TOOLS_BIN}/stringer -type=Severity
type Severity int

// Severities in increasing order of urgency.
const (
	TRACE Severity = iota
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
)

// SeverityFromString parses level case-insensitively, unknown values are INFO.
func SeverityFromString(level string) Severity {
	severity, _ := ParseSeverity(level)
	return severity
}

// ParseSeverity is the strict form of SeverityFromString: ok is false, and the
// severity INFO, when level names no severity.
func ParseSeverity(level string) (severity Severity, ok bool) {
	switch strings.ToUpper(level) {
	case "TRACE":
		return TRACE, true
	case "DEBUG":
		return DEBUG, true
	case "INFO":
		return INFO, true
	case "WARN", "WARNING":
		return WARN, true
	case "ERROR":
		return ERROR, true
	case "FATAL":
		return FATAL, true
	default:
		return INFO, false
	}
}

// Translate returns the engine level for severity. The engine has no trace tier so
// TRACE shares the debug level; anything unknown is written at info.
func Translate(severity Severity) engine.Level {
	switch severity {
	case TRACE:
		return engine.DebugLevel
	case DEBUG:
		return engine.DebugLevel
	case WARN:
		return engine.WarnLevel
	case ERROR:
		return engine.ErrorLevel
	case FATAL:
		return engine.FatalLevel
	default:
		return engine.InfoLevel
	}
}
