// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/logbridge/internal/engine"
	"github.com/mia-platform/logbridge/internal/engine/fake"
)

func TestCreateLogger(t *testing.T) {
	t.Parallel()

	registry := fake.NewFakeRegistry(t)
	factory := NewFactory(registry)

	unnamed, err := factory.CreateLogger("")
	require.NoError(t, err)
	named, err := factory.CreateLogger("svc.module")
	require.NoError(t, err)

	assert.NotSame(t, unnamed, named)
	assert.Equal(t, []string{"", "svc.module"}, registry.Lookups())

	require.NoError(t, unnamed.Info("from unnamed"))
	require.NoError(t, named.Error("from {0}", "named"))

	unnamedEntries := registry.EntriesFor("")
	require.Len(t, unnamedEntries, 1)
	assert.Equal(t, "from unnamed", unnamedEntries[0].Message)

	namedEntries := registry.EntriesFor("svc.module")
	require.Len(t, namedEntries, 1)
	assert.Equal(t, "from named", namedEntries[0].Message)
	assert.Equal(t, engine.ErrorLevel, namedEntries[0].Level)
}

func TestCreateLoggerWithMissingHandle(t *testing.T) {
	t.Parallel()

	lookups := 0
	factory := NewFactory(engine.RegistryFunc(func(name string) engine.Handle {
		lookups++
		return nil
	}))

	log, err := factory.CreateLogger("missing")
	assert.Nil(t, log)
	assert.ErrorIs(t, err, ErrNilHandle)
	assert.Equal(t, 1, lookups)
}
