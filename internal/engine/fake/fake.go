// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"sync"
	"testing"

	"github.com/mia-platform/logbridge/internal/engine"
)

var (
	_ engine.Registry = &FakeRegistry{}
	_ engine.Handle   = &FakeHandle{}
)

// Entry is one write received by a FakeHandle.
type Entry struct {
	Logger  string
	Origin  string
	Level   engine.Level
	Message string
	Err     error
}

// FakeRegistry hands out recording handles and keeps every write they receive
// in arrival order.
type FakeRegistry struct {
	tb testing.TB

	// WriteErr, when set, is returned by every handle instead of recording the entry.
	WriteErr error

	lock    sync.Mutex
	lookups []string
	entries []Entry
}

func NewFakeRegistry(tb testing.TB) *FakeRegistry {
	tb.Helper()
	return &FakeRegistry{tb: tb}
}

func (f *FakeRegistry) GetLogger(name string) engine.Handle {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.lookups = append(f.lookups, name)
	return &FakeHandle{name: name, registry: f}
}

// Lookups returns the names requested so far.
func (f *FakeRegistry) Lookups() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]string(nil), f.lookups...)
}

// Entries returns all the recorded writes.
func (f *FakeRegistry) Entries() []Entry {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]Entry(nil), f.entries...)
}

// EntriesFor returns the recorded writes of the logger called name.
func (f *FakeRegistry) EntriesFor(name string) []Entry {
	f.lock.Lock()
	defer f.lock.Unlock()

	filtered := make([]Entry, 0)
	for _, entry := range f.entries {
		if entry.Logger == name {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// FakeHandle records its writes on the owning FakeRegistry.
type FakeHandle struct {
	name     string
	registry *FakeRegistry
}

func (h *FakeHandle) Write(origin string, level engine.Level, message string, err error) error {
	h.registry.tb.Helper()
	h.registry.lock.Lock()
	defer h.registry.lock.Unlock()

	if h.registry.WriteErr != nil {
		return h.registry.WriteErr
	}

	h.registry.entries = append(h.registry.entries, Entry{
		Logger:  h.name,
		Origin:  origin,
		Level:   level,
		Message: message,
		Err:     err,
	})
	return nil
}
