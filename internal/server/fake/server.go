// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/mia-platform/logbridge/internal/server"
)

var _ server.Server = &Server{}

type Route struct {
	Method  string
	Path    string
	Handler func(context.Context, http.Header, []byte) error
}

// Server records the registered routes and lets tests call them without listening.
type Server struct {
	tb               testing.TB
	RegisteredRoutes []Route

	startOnce   sync.Once
	stopOnce    sync.Once
	startedChan chan struct{}
	closedChan  chan struct{}
}

func NewFakeServer(tb testing.TB) *Server {
	tb.Helper()

	return &Server{
		tb:          tb,
		startedChan: make(chan struct{}),
		closedChan:  make(chan struct{}),
	}
}

func (s *Server) AddRoute(method string, path string, handler func(ctx context.Context, headers http.Header, body []byte) error) {
	s.tb.Helper()
	s.RegisteredRoutes = append(s.RegisteredRoutes, Route{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
}

// Start blocks until Stop is called.
func (s *Server) Start() error {
	s.tb.Helper()
	s.startOnce.Do(func() { close(s.startedChan) })
	<-s.closedChan
	return nil
}

func (s *Server) Stop() error {
	s.tb.Helper()
	s.stopOnce.Do(func() { close(s.closedChan) })
	return nil
}

func (s *Server) StartAsync(_ context.Context) {
	s.tb.Helper()
	go func() {
		_ = s.Start()
	}()
}

// Call invokes the handler registered for method and path.
func (s *Server) Call(ctx context.Context, method, path string, body []byte) error {
	s.tb.Helper()
	for _, route := range s.RegisteredRoutes {
		if route.Method == method && route.Path == path {
			return route.Handler(ctx, http.Header{}, body)
		}
	}

	s.tb.Fatalf("no route registered for %s %s", method, path)
	return nil
}

func (s *Server) StartedServer() <-chan struct{} {
	s.tb.Helper()
	return s.startedChan
}

func (s *Server) StoppedServer() <-chan struct{} {
	s.tb.Helper()
	return s.closedChan
}
