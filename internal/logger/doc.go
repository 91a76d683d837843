// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger exposes a small leveled logging interface whose writes are delegated
// to an external logging engine. A Factory looks up named handles in the engine
// registry and wraps each of them in a Logger; every Log call formats the message,
// translates the severity to the engine level and forwards exactly one entry.
//
// Loggers hold no state besides their handle and add no synchronization: they are
// as safe for concurrent use as the engine handle they wrap.
package logger
