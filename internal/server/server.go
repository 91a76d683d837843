// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/logbridge/internal/info"
	"github.com/mia-platform/logbridge/internal/logger"
)

const (
	loggerName = "logbridge:server"

	excludedLogPrefix = "/-/"
)

type Server interface {
	AddRoute(method string, path string, handler func(ctx context.Context, headers http.Header, body []byte) error)
	Start() error
	Stop() error
	StartAsync(ctx context.Context)
}

type impServer struct {
	Config

	app *fiber.App
}

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// NewServer returns a Server configured with cfg that logs every request, except the
// status probes, through the logger provider found in ctx.
func NewServer(ctx context.Context, cfg *Config) (Server, error) {
	if err := validateEnvironmentVariables(cfg); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.DisableStartupMessage,
		Immutable:             true, // handlers receive the body after the request lifecycle
	})
	app.Use(logger.RequestMiddlewareLogger(logger.ProviderFromContext(ctx), []string{excludedLogPrefix}))

	statusRoutes(app, info.AppName, info.Version)

	return &impServer{
		app:    app,
		Config: *cfg,
	}, nil
}

func (s *impServer) AddRoute(method string, path string, handler func(ctx context.Context, headers http.Header, body []byte) error) {
	s.app.Add(method, path, func(ctx *fiber.Ctx) error {
		if err := handler(ctx.UserContext(), ctx.GetReqHeaders(), ctx.Body()); err != nil {
			statusCode := http.StatusInternalServerError
			message := "error processing log entry"
			if errors.Is(err, ErrInvalidEntry) {
				statusCode = http.StatusBadRequest
				message = err.Error()
			}

			return ctx.Status(statusCode).JSON(fiber.Map{
				"statusCode": statusCode,
				"error":      http.StatusText(statusCode),
				"message":    message,
			})
		}
		ctx.Status(http.StatusNoContent)
		return nil
	})
}

func (s *impServer) Start() error {
	if err := s.app.Listen(fmt.Sprintf("%s:%d", s.HTTPHost, s.HTTPPort)); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

func (s *impServer) Stop() error {
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}

func (s *impServer) StartAsync(ctx context.Context) {
	log, err := logger.ProviderFromContext(ctx).CreateLogger(loggerName)
	if err != nil {
		log = logger.FromContext(ctx)
	}

	go func() {
		if err := s.Start(); err != nil {
			_ = log.LogErr(logger.ERROR, err, "server stopped listening on {0}:{1}", s.HTTPHost, s.HTTPPort)
		}
	}()
}
