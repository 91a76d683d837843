// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
)

// WithContext returns a new context with the provided logger.
func WithContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}

// FromContext retrieves the logger from the context. If no logger is found, a new null logger is returned.
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey).(Logger); ok {
			return logger
		}
	}

	return nullLogger
}

// WithProvider returns a new context with the provided logger provider.
func WithProvider(ctx context.Context, provider Provider) context.Context {
	return context.WithValue(ctx, providerContextKey, provider)
}

// ProviderFromContext retrieves the provider from the context, or one creating null loggers.
func ProviderFromContext(ctx context.Context) Provider {
	if ctx != nil {
		if provider, ok := ctx.Value(providerContextKey).(Provider); ok {
			return provider
		}
	}

	return nullProvider
}

// Unexported new types so that our context keys never collide with another.
type contextKeyType struct{}
type providerContextKeyType struct{}

var (
	// contextKey is the key used for the context to store the logger.
	contextKey = contextKeyType{}
	// providerContextKey is the key used for the context to store the provider.
	providerContextKey = providerContextKeyType{}
)
