// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mia-platform/logbridge/internal/engine"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		severity Severity
		expected engine.Level
	}{
		"trace collapses to debug": {severity: TRACE, expected: engine.DebugLevel},
		"debug":                    {severity: DEBUG, expected: engine.DebugLevel},
		"info":                     {severity: INFO, expected: engine.InfoLevel},
		"warn":                     {severity: WARN, expected: engine.WarnLevel},
		"error":                    {severity: ERROR, expected: engine.ErrorLevel},
		"fatal":                    {severity: FATAL, expected: engine.FatalLevel},
		"negative value is info":   {severity: Severity(-1), expected: engine.InfoLevel},
		"out of range is info":     {severity: Severity(999), expected: engine.InfoLevel},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, Translate(test.severity))
		})
	}

	assert.Equal(t, Translate(TRACE), Translate(DEBUG))
}

func TestSeverityStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TRACE", TRACE.String())
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "FATAL", FATAL.String())
	assert.Equal(t, "Severity(999)", Severity(999).String())

	assert.Equal(t, TRACE, SeverityFromString("trace"))
	assert.Equal(t, DEBUG, SeverityFromString("DEBUG"))
	assert.Equal(t, INFO, SeverityFromString("Info"))
	assert.Equal(t, WARN, SeverityFromString("WARN"))
	assert.Equal(t, WARN, SeverityFromString("warning"))
	assert.Equal(t, ERROR, SeverityFromString("ERROR"))
	assert.Equal(t, FATAL, SeverityFromString("fatal"))
	assert.Equal(t, INFO, SeverityFromString("INVALID"))
	assert.Equal(t, INFO, SeverityFromString(""))
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		value            string
		expectedSeverity Severity
		expectedOk       bool
	}{
		"lowercase":     {value: "warn", expectedSeverity: WARN, expectedOk: true},
		"warning alias": {value: "Warning", expectedSeverity: WARN, expectedOk: true},
		"uppercase":     {value: "FATAL", expectedSeverity: FATAL, expectedOk: true},
		"mixed case":    {value: "Trace", expectedSeverity: TRACE, expectedOk: true},
		"unknown":       {value: "loud", expectedSeverity: INFO},
		"empty":         {value: "", expectedSeverity: INFO},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			severity, ok := ParseSeverity(test.value)
			assert.Equal(t, test.expectedOk, ok)
			assert.Equal(t, test.expectedSeverity, severity)
		})
	}
}
