// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package zapengine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mia-platform/logbridge/internal/engine"
)

type failingCore struct {
	zapcore.Core
	err error
}

func (c failingCore) Write(zapcore.Entry, []zapcore.Field) error {
	return c.err
}

func TestRegistryKeepsNoStatePerName(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	registry := NewRegistry(core)

	for i := range 10000 {
		registry.GetLogger(fmt.Sprintf("request:%d", i))
	}
	assert.Equal(t, NewRegistry(core), registry)

	require.NoError(t, registry.GetLogger("request:1").Write("origin", engine.InfoLevel, "first", nil))
	require.NoError(t, registry.GetLogger("request:1").Write("origin", engine.InfoLevel, "second", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "request:1", entries[0].LoggerName)
	assert.Equal(t, "request:1", entries[1].LoggerName)
}

func TestHandleWrite(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	registry := NewRegistry(core)

	named := registry.GetLogger("svc.module")
	unnamed := registry.GetLogger("")

	require.NoError(t, named.Write("origin.type", engine.InfoLevel, "x=5", nil))
	require.NoError(t, unnamed.Write("origin.type", engine.ErrorLevel, "failed: reason", errors.New("boom")))
	require.NoError(t, named.Write("origin.type", engine.DebugLevel, "below threshold", nil))
	require.NoError(t, named.Write("origin.type", engine.FatalLevel, "fatal entry", nil))

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "svc.module", entries[0].LoggerName)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "x=5", entries[0].Message)
	assert.Equal(t, map[string]any{SourceKey: "origin.type"}, entries[0].ContextMap())

	assert.Empty(t, entries[1].LoggerName)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, map[string]any{SourceKey: "origin.type", "error": "boom"}, entries[1].ContextMap())

	assert.Equal(t, zapcore.FatalLevel, entries[2].Level)
	assert.Equal(t, "fatal entry", entries[2].Message)
}

func TestHandleWritePropagatesCoreErrors(t *testing.T) {
	t.Parallel()

	core, _ := observer.New(zapcore.DebugLevel)
	expected := errors.New("sink failure")
	registry := NewRegistry(failingCore{Core: core, err: expected})

	err := registry.GetLogger("name").Write("origin", engine.WarnLevel, "message", nil)
	assert.ErrorIs(t, err, expected)
}

func TestNewJSONOutput(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	registry := New(Options{Level: engine.WarnLevel, Format: FormatJSON, Output: buffer})

	handle := registry.GetLogger("svc.module")
	require.NoError(t, handle.Write("origin", engine.InfoLevel, "silenced", nil))
	require.NoError(t, handle.Write("origin", engine.WarnLevel, "disk almost full", nil))
	require.NoError(t, registry.Sync())

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 1)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	assert.Equal(t, "warn", decoded["level"])
	assert.Equal(t, "svc.module", decoded["logger"])
	assert.Equal(t, "disk almost full", decoded["msg"])
	assert.Equal(t, "origin", decoded[SourceKey])
	assert.Contains(t, decoded, "time")
}

func TestNewConsoleOutput(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	registry := New(Options{Level: engine.DebugLevel, Format: FormatConsole, Output: buffer})

	require.NoError(t, registry.GetLogger("console").Write("origin", engine.DebugLevel, "plain text", nil))
	assert.Contains(t, buffer.String(), "DEBUG")
	assert.Contains(t, buffer.String(), "plain text")
	assert.Contains(t, buffer.String(), "console")
}

func TestConcurrentWrites(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	registry := NewRegistry(core)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, registry.GetLogger("shared").Write("origin", engine.InfoLevel, "line", nil))
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, logs.Len())
}
