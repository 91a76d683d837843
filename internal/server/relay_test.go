// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/logbridge/internal/engine"
	"github.com/mia-platform/logbridge/internal/engine/fake"
	"github.com/mia-platform/logbridge/internal/format"
	"github.com/mia-platform/logbridge/internal/logger"
)

func TestRelayHandler(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		body            string
		expectedLogger  string
		expectedLevel   engine.Level
		expectedMessage string
		expectedErr     string
	}{
		"plain message": {
			body:            `{"name":"svc","severity":"info","message":"service started"}`,
			expectedLogger:  "svc",
			expectedLevel:   engine.InfoLevel,
			expectedMessage: "service started",
		},
		"integer argument keeps integral specifiers": {
			body:            `{"name":"svc","severity":"debug","message":"id={0:X4}","args":[255]}`,
			expectedLogger:  "svc",
			expectedLevel:   engine.DebugLevel,
			expectedMessage: "id=00FF",
		},
		"mixed arguments": {
			body:            `{"name":"svc","severity":"warn","message":"{0} {1} {2} {3}","args":["a",1.5,true,null]}`,
			expectedLogger:  "svc",
			expectedLevel:   engine.WarnLevel,
			expectedMessage: "a 1.5 true ",
		},
		"attached error": {
			body:            `{"name":"db","severity":"error","message":"failed: {0}","args":["reason"],"error":"connection reset"}`,
			expectedLogger:  "db",
			expectedLevel:   engine.ErrorLevel,
			expectedMessage: "failed: reason",
			expectedErr:     "connection reset",
		},
		"culture": {
			body:            `{"name":"billing","severity":"info","message":"total {0:N2}","args":[1234.5],"culture":"de"}`,
			expectedLogger:  "billing",
			expectedLevel:   engine.InfoLevel,
			expectedMessage: "total 1.234,50",
		},
		"unknown severity is info": {
			body:            `{"name":"svc","severity":"verbose","message":"m"}`,
			expectedLogger:  "svc",
			expectedLevel:   engine.InfoLevel,
			expectedMessage: "m",
		},
		"trace is written as debug": {
			body:            `{"name":"svc","severity":"trace","message":"m"}`,
			expectedLogger:  "svc",
			expectedLevel:   engine.DebugLevel,
			expectedMessage: "m",
		},
		"fatal": {
			body:            `{"name":"svc","severity":"FATAL","message":"m"}`,
			expectedLogger:  "svc",
			expectedLevel:   engine.FatalLevel,
			expectedMessage: "m",
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			registry := fake.NewFakeRegistry(t)
			handler := RelayHandler(logger.NewFactory(registry))

			require.NoError(t, handler(t.Context(), http.Header{}, []byte(test.body)))

			entries := registry.Entries()
			require.Len(t, entries, 1)
			assert.Equal(t, test.expectedLogger, entries[0].Logger)
			assert.Equal(t, test.expectedLevel, entries[0].Level)
			assert.Equal(t, test.expectedMessage, entries[0].Message)
			if test.expectedErr == "" {
				assert.NoError(t, entries[0].Err)
			} else {
				assert.EqualError(t, entries[0].Err, test.expectedErr)
			}
		})
	}
}

func TestRelayHandlerInvalidEntries(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"malformed json":    `{"name":`,
		"unknown field":     `{"message":"m","level":"info"}`,
		"missing message":   `{"name":"svc","severity":"info"}`,
		"invalid culture":   `{"message":"m","culture":"not a tag"}`,
		"missing argument":  `{"message":"x={0}"}`,
		"invalid specifier": `{"message":"{0:Q}","args":[1]}`,
	}

	for testName, body := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			registry := fake.NewFakeRegistry(t)
			err := RelayHandler(logger.NewFactory(registry))(t.Context(), http.Header{}, []byte(body))
			require.ErrorIs(t, err, ErrInvalidEntry)
			assert.Empty(t, registry.Entries())
		})
	}
}

func TestRelayHandlerFormatErrorIsKept(t *testing.T) {
	t.Parallel()

	err := RelayHandler(logger.NewFactory(fake.NewFakeRegistry(t)))(t.Context(), http.Header{}, []byte(`{"message":"{1}","args":[1]}`))
	require.ErrorIs(t, err, ErrInvalidEntry)

	var formatErr *format.Error
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "{1}", formatErr.Template)
}

func TestRelayHandlerEngineFailure(t *testing.T) {
	t.Parallel()

	registry := fake.NewFakeRegistry(t)
	registry.WriteErr = errors.New("appender failure")

	err := RelayHandler(logger.NewFactory(registry))(t.Context(), http.Header{}, []byte(`{"message":"m"}`))
	require.ErrorIs(t, err, registry.WriteErr)
	assert.NotErrorIs(t, err, ErrInvalidEntry)
}
