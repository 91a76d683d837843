// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package hclogengine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/logbridge/internal/engine"
)

func decodeLines(t *testing.T, buffer *bytes.Buffer) []map[string]any {
	t.Helper()

	decoded := make([]map[string]any, 0)
	for _, line := range strings.Split(strings.TrimSpace(buffer.String()), "\n") {
		if line == "" {
			continue
		}
		entry := make(map[string]any)
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		decoded = append(decoded, entry)
	}
	return decoded
}

func TestConvertedLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		level    engine.Level
		expected hclog.Level
	}{
		"debug": {level: engine.DebugLevel, expected: hclog.Debug},
		"info":  {level: engine.InfoLevel, expected: hclog.Info},
		"warn":  {level: engine.WarnLevel, expected: hclog.Warn},
		"error": {level: engine.ErrorLevel, expected: hclog.Error},
		"fatal": {level: engine.FatalLevel, expected: hclog.Error},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, convertedLevel(test.level))
		})
	}
}

func TestRegistryWrites(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	registry := New(Options{Level: engine.InfoLevel, Format: FormatJSON, Output: buffer})

	named := registry.GetLogger("svc.module")

	require.NoError(t, named.Write("origin", engine.InfoLevel, "x=5", nil))
	require.NoError(t, named.Write("origin", engine.DebugLevel, "silenced", nil))
	require.NoError(t, registry.GetLogger("").Write("origin", engine.ErrorLevel, "failed: reason", errors.New("boom")))

	entries := decodeLines(t, buffer)
	require.Len(t, entries, 2)

	assert.Equal(t, "info", entries[0]["@level"])
	assert.Equal(t, "x=5", entries[0]["@message"])
	assert.Equal(t, "svc.module", entries[0]["@module"])
	assert.Equal(t, "origin", entries[0][SourceKey])

	assert.Equal(t, "error", entries[1]["@level"])
	assert.Equal(t, "failed: reason", entries[1]["@message"])
	assert.NotContains(t, entries[1], "@module")
	assert.Equal(t, "boom", entries[1][errorKey])
}

func TestRegistryKeepsNoStatePerName(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	root := hclog.New(&hclog.LoggerOptions{JSONFormat: true, Output: buffer, Level: hclog.Info})
	registry := NewRegistry(root)

	for i := range 10000 {
		registry.GetLogger(fmt.Sprintf("request:%d", i))
	}
	assert.Equal(t, NewRegistry(root), registry)

	require.NoError(t, registry.GetLogger("request:1").Write("origin", engine.InfoLevel, "first", nil))
	require.NoError(t, registry.GetLogger("request:1").Write("origin", engine.InfoLevel, "second", nil))

	entries := decodeLines(t, buffer)
	require.Len(t, entries, 2)
	assert.Equal(t, "request:1", entries[0]["@module"])
	assert.Equal(t, "request:1", entries[1]["@module"])
}
