// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"reflect"

	"github.com/mia-platform/logbridge/internal/engine"
	"github.com/mia-platform/logbridge/internal/format"
)

var (
	// nullLogger is a logger that discards all log messages.
	nullLogger Logger = &adapter{handle: nopHandle{}}

	// adapterOrigin is reported to the engine as the source of every entry.
	adapterOrigin = reflect.TypeFor[adapter]().PkgPath() + "." + reflect.TypeFor[adapter]().Name()
)

// Logger describes the interface that must be implemented by all loggers.
//
// message is a composite format template ("x={0}") rendered with args; the returned
// error is a *format.Error when they do not match, or the error of the engine.
type Logger interface {
	// Log writes message at level.
	Log(level Severity, message string, args ...any) error

	// LogErr writes message at level attaching err.
	LogErr(level Severity, err error, message string, args ...any) error

	// LogWith writes message at level rendering args with provider.
	LogWith(level Severity, provider format.Provider, message string, args ...any) error

	// LogErrWith writes message at level attaching err and rendering args with provider.
	LogErrWith(level Severity, err error, provider format.Provider, message string, args ...any) error

	// Trace writes message at the TRACE level.
	Trace(message string, args ...any) error

	// Debug writes message at the DEBUG level.
	Debug(message string, args ...any) error

	// Info writes message at the INFO level.
	Info(message string, args ...any) error

	// Warn writes message at the WARN level.
	Warn(message string, args ...any) error

	// Error writes message at the ERROR level.
	Error(message string, args ...any) error

	// Fatal writes message at the FATAL level. It does not stop the process.
	Fatal(message string, args ...any) error
}

// Make sure that adapter is a Logger.
var _ Logger = &adapter{}

// adapter is a Logger implementation forwarding to one engine handle.
type adapter struct {
	handle engine.Handle
}

// NewAdapter wraps handle in a Logger. A nil handle is an *ArgumentError.
func NewAdapter(handle engine.Handle) (Logger, error) {
	if isNil(handle) {
		return nil, &ArgumentError{Argument: "handle", err: ErrNilHandle}
	}

	return &adapter{handle: handle}, nil
}

func (a *adapter) Log(level Severity, message string, args ...any) error {
	return a.write(level, nil, nil, message, args)
}

func (a *adapter) LogErr(level Severity, err error, message string, args ...any) error {
	return a.write(level, err, nil, message, args)
}

func (a *adapter) LogWith(level Severity, provider format.Provider, message string, args ...any) error {
	return a.write(level, nil, provider, message, args)
}

func (a *adapter) LogErrWith(level Severity, err error, provider format.Provider, message string, args ...any) error {
	return a.write(level, err, provider, message, args)
}

func (a *adapter) Trace(message string, args ...any) error {
	return a.write(TRACE, nil, nil, message, args)
}

func (a *adapter) Debug(message string, args ...any) error {
	return a.write(DEBUG, nil, nil, message, args)
}

func (a *adapter) Info(message string, args ...any) error {
	return a.write(INFO, nil, nil, message, args)
}

func (a *adapter) Warn(message string, args ...any) error {
	return a.write(WARN, nil, nil, message, args)
}

func (a *adapter) Error(message string, args ...any) error {
	return a.write(ERROR, nil, nil, message, args)
}

func (a *adapter) Fatal(message string, args ...any) error {
	return a.write(FATAL, nil, nil, message, args)
}

// write is the single path behind every call: format, translate, forward once.
func (a *adapter) write(level Severity, err error, provider format.Provider, message string, args []any) error {
	text, formatErr := format.Sprintf(provider, message, args...)
	if formatErr != nil {
		return formatErr
	}

	return a.handle.Write(adapterOrigin, Translate(level), text, err)
}

// isNil reports whether handle is nil or wraps a nil value.
func isNil(handle engine.Handle) bool {
	if handle == nil {
		return true
	}

	value := reflect.ValueOf(handle)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}

// nopHandle discards every entry.
type nopHandle struct{}

func (nopHandle) Write(string, engine.Level, string, error) error {
	return nil
}
