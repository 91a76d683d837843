// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/text/language"

	"github.com/mia-platform/logbridge/internal/format"
	"github.com/mia-platform/logbridge/internal/logger"
)

// RelayPath is where log entries are accepted.
const RelayPath = "/log"

var (
	// ErrInvalidEntry reports a request body that cannot be written as a log entry.
	ErrInvalidEntry = errors.New("invalid log entry")
)

// Entry is the body accepted by the relay.
type Entry struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Args     []any  `json:"args,omitempty"`
	Error    string `json:"error,omitempty"`
	Culture  string `json:"culture,omitempty"`
}

// RelayHandler returns a route handler that decodes an Entry from the body and writes it
// on the logger named after it. Unknown severities are written as INFO.
func RelayHandler(provider logger.Provider) func(ctx context.Context, headers http.Header, body []byte) error {
	return func(ctx context.Context, _ http.Header, body []byte) error {
		entry, err := decodeEntry(body)
		if err != nil {
			return err
		}

		var formatProvider format.Provider
		if entry.Culture != "" {
			tag, err := language.Parse(entry.Culture)
			if err != nil {
				return fmt.Errorf("%w: culture %q", ErrInvalidEntry, entry.Culture)
			}
			formatProvider = format.Culture(tag)
		}

		var entryErr error
		if entry.Error != "" {
			entryErr = errors.New(entry.Error)
		}

		log, err := provider.CreateLogger(entry.Name)
		if err != nil {
			return err
		}

		severity := logger.SeverityFromString(entry.Severity)
		if err := logger.FromContext(ctx).Debug("relaying {0} entry to logger {1}", severity, entry.Name); err != nil {
			return err
		}

		if err := log.LogErrWith(severity, entryErr, formatProvider, entry.Message, entry.Args...); err != nil {
			if errors.Is(err, format.ErrFormat) {
				return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
			}
			return err
		}
		return nil
	}
}

func decodeEntry(body []byte) (*Entry, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	decoder.DisallowUnknownFields()

	entry := new(Entry)
	if err := decoder.Decode(entry); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEntry, err.Error())
	}

	if entry.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidEntry)
	}

	for i, arg := range entry.Args {
		entry.Args[i] = jsonArgument(arg)
	}
	return entry, nil
}

// jsonArgument keeps integers integral so that specifiers like D and X apply to them.
func jsonArgument(arg any) any {
	number, ok := arg.(json.Number)
	if !ok {
		return arg
	}

	if value, err := number.Int64(); err == nil {
		return value
	}
	if value, err := number.Float64(); err == nil {
		return value
	}
	return number.String()
}
