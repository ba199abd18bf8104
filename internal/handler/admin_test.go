package handler

import (
	"context"
	"testing"

	"github.com/set-night/cryptominer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminConfig() *config.Config {
	return &config.Config{AdminIDs: []int64{1}}
}

func TestGrantBoostSetsPower(t *testing.T) {
	b, log := newTestBot(t)
	h, store := newTestHandler(t, b, adminConfig())

	ctx := context.Background()
	_, _, err := store.GetOrCreate(ctx, 100, "Alice", "alice")
	require.NoError(t, err)

	h.handleGrantBoost(ctx, b, startUpdate(1, "/boost 100 2.5"))

	acc, err := store.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 2.5, acc.MiningPower)

	sent := log.method("sendMessage")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].body, "set to 2.5x")
}

func TestGrantBoostIgnoresNonAdmin(t *testing.T) {
	b, log := newTestBot(t)
	h, store := newTestHandler(t, b, adminConfig())

	ctx := context.Background()
	_, _, err := store.GetOrCreate(ctx, 100, "Alice", "alice")
	require.NoError(t, err)

	h.handleGrantBoost(ctx, b, startUpdate(2, "/boost 100 2.5"))

	acc, err := store.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc.MiningPower)
	assert.Empty(t, log.method("sendMessage"))
}

func TestGrantBoostMalformedArgs(t *testing.T) {
	b, log := newTestBot(t)
	h, _ := newTestHandler(t, b, adminConfig())

	ctx := context.Background()
	h.handleGrantBoost(ctx, b, startUpdate(1, "/boost"))
	h.handleGrantBoost(ctx, b, startUpdate(1, "/boost nope 2"))
	h.handleGrantBoost(ctx, b, startUpdate(1, "/boost 100 nope"))

	sent := log.method("sendMessage")
	require.Len(t, sent, 3)
	for _, c := range sent {
		assert.Contains(t, c.body, "Usage: /boost")
	}
}

func TestGrantBoostUnknownAccount(t *testing.T) {
	b, log := newTestBot(t)
	h, _ := newTestHandler(t, b, adminConfig())

	h.handleGrantBoost(context.Background(), b, startUpdate(1, "/boost 999 2"))

	sent := log.method("sendMessage")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].body, "No account")
}

func TestGrantBoostRejectsNonPositivePower(t *testing.T) {
	b, log := newTestBot(t)
	h, store := newTestHandler(t, b, adminConfig())

	ctx := context.Background()
	_, _, err := store.GetOrCreate(ctx, 100, "Alice", "alice")
	require.NoError(t, err)

	h.handleGrantBoost(ctx, b, startUpdate(1, "/boost 100 0"))

	acc, err := store.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc.MiningPower)

	sent := log.method("sendMessage")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].body, "greater than zero")
}
