// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server contains the HTTP relay of the logbridge application.
// It sets up the HTTP server using the Fiber framework, logs every request through the
// logger provider found in the context, and accepts log entries to write on the engine.
package server
