// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRouteRegistersHandler(t *testing.T) {
	t.Parallel()

	server := NewFakeServer(t)

	handled := false
	server.AddRoute(http.MethodPost, "/log", func(_ context.Context, _ http.Header, body []byte) error {
		handled = true
		assert.Equal(t, "payload", string(body))
		return nil
	})

	require.Len(t, server.RegisteredRoutes, 1)
	assert.Equal(t, http.MethodPost, server.RegisteredRoutes[0].Method)
	assert.Equal(t, "/log", server.RegisteredRoutes[0].Path)

	require.NoError(t, server.Call(t.Context(), http.MethodPost, "/log", []byte("payload")))
	assert.True(t, handled)
}

func TestStartAndStop(t *testing.T) {
	t.Parallel()

	server := NewFakeServer(t)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	<-server.StartedServer()
	require.NoError(t, server.Stop())
	<-server.StoppedServer()
	require.NoError(t, <-errChan)

	require.NoError(t, server.Stop(), "stopping twice is allowed")
}

func TestStartAsyncSignalsStarted(t *testing.T) {
	t.Parallel()

	server := NewFakeServer(t)
	server.StartAsync(t.Context())

	<-server.StartedServer()
	require.NoError(t, server.Stop())
}
