// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	forwardedHostHeaderKey = "x-forwarded-host"
	forwardedForHeaderKey  = "x-forwarded-for"
	requestIDHeaderName    = "x-request-id"

	requestLoggerPrefix = "request:"

	IncomingRequestMessage  = "incoming request {0} {1} host={2} forwardedHost={3} ip={4} userAgent={5}"
	RequestCompletedMessage = "request completed {0} {1} statusCode={2} bytes={3} responseTime={4}ms"
)

type fiberLoggingContext struct {
	c          *fiber.Ctx
	handlerErr error
}

type loggingContext interface {
	Request() requestLoggingContext
	Response() responseLoggingContext
}

type requestLoggingContext interface {
	GetHeader(string) string
	URI() string
	Host() string
	Method() string
}

type responseLoggingContext interface {
	BodySize() int
	StatusCode() int
}

func removePort(host string) string {
	return strings.Split(host, ":")[0]
}

func GetReqID(ctx loggingContext) string {
	if requestID := ctx.Request().GetHeader(requestIDHeaderName); requestID != "" {
		return requestID
	}
	// Generate a random uuid string. e.g. 16c9c1f2-c001-40d3-bbfe-48857367e7b5
	requestID, err := uuid.NewRandom()
	if err != nil {
		panic(fmt.Errorf("error generating request id: %w", err))
	}
	return requestID.String()
}

func logIncomingRequest(ctx loggingContext, logger Logger) error {
	return logger.Trace(IncomingRequestMessage,
		ctx.Request().Method(),
		ctx.Request().URI(),
		removePort(ctx.Request().Host()),
		ctx.Request().GetHeader(forwardedHostHeaderKey),
		ctx.Request().GetHeader(forwardedForHeaderKey),
		ctx.Request().GetHeader("user-agent"),
	)
}

func logRequestCompleted(ctx loggingContext, logger Logger, startTime time.Time) error {
	return logger.Info(RequestCompletedMessage,
		ctx.Request().Method(),
		ctx.Request().URI(),
		ctx.Response().StatusCode(),
		ctx.Response().BodySize(),
		time.Since(startTime).Milliseconds(),
	)
}

func (flc *fiberLoggingContext) Request() requestLoggingContext {
	return flc
}

func (flc *fiberLoggingContext) Response() responseLoggingContext {
	return flc
}

func (flc *fiberLoggingContext) GetHeader(key string) string {
	return flc.c.Get(key, "")
}

func (flc *fiberLoggingContext) URI() string {
	return string(flc.c.Request().URI().RequestURI())
}

func (flc *fiberLoggingContext) Host() string {
	return string(flc.c.Request().Host())
}

func (flc *fiberLoggingContext) Method() string {
	return flc.c.Method()
}

func (flc fiberLoggingContext) getFiberError() *fiber.Error {
	if fiberErr, ok := flc.handlerErr.(*fiber.Error); flc.handlerErr != nil && ok {
		return fiberErr
	}
	return nil
}

func (flc *fiberLoggingContext) setError(err error) {
	flc.handlerErr = err
}

func (flc *fiberLoggingContext) BodySize() int {
	if fiberErr := flc.getFiberError(); fiberErr != nil {
		return len(fiberErr.Error())
	}

	// bodiless statuses are sent without the body fiber may have filled in
	switch flc.c.Response().StatusCode() {
	case fiber.StatusNoContent, fiber.StatusNotModified:
		return 0
	}

	if content := flc.c.GetRespHeader("Content-Length"); content != "" {
		if length, err := strconv.Atoi(content); err == nil {
			return length
		}
	}
	return len(flc.c.Response().Body())
}

func (flc *fiberLoggingContext) StatusCode() int {
	if fiberErr := flc.getFiberError(); fiberErr != nil {
		return fiberErr.Code
	}

	return flc.c.Response().StatusCode()
}

// RequestMiddlewareLogger is a fiber middleware to log all requests.
// Every request gets its own logger, named after the request id, that is also stored
// in the user context. Logging errors are returned only when the handler succeeded.
func RequestMiddlewareLogger(provider Provider, excludedPrefix []string) func(*fiber.Ctx) error {
	return func(fiberCtx *fiber.Ctx) error {
		fiberLoggingContext := &fiberLoggingContext{c: fiberCtx}

		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(fiberLoggingContext.Request().URI(), prefix) {
				return fiberCtx.Next()
			}
		}

		start := time.Now()

		requestID := GetReqID(fiberLoggingContext)
		requestLogger, err := provider.CreateLogger(requestLoggerPrefix + requestID)
		if err != nil {
			return err
		}

		ctx := WithContext(fiberCtx.UserContext(), requestLogger)
		fiberCtx.SetUserContext(ctx)

		if err := logIncomingRequest(fiberLoggingContext, requestLogger); err != nil {
			return err
		}

		handlerErr := fiberCtx.Next()
		fiberLoggingContext.setError(handlerErr)

		logErr := logRequestCompleted(fiberLoggingContext, requestLogger, start)
		if handlerErr != nil {
			return handlerErr
		}
		return logErr
	}
}
