package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "12345:TEST")
	t.Setenv("ADMIN_IDS", "1,2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "12345:TEST", cfg.BotToken)
	assert.Equal(t, []int64{1, 2}, cfg.AdminIDs)
	assert.Equal(t, int32(20), cfg.DBMaxConns)
	assert.Equal(t, int32(5), cfg.DBMinConns)
	assert.Equal(t, 3, cfg.MiningSteps)
	assert.Equal(t, 5*time.Second, cfg.StepDelay)
	assert.Equal(t, time.Duration(0), cfg.MiningCooldown)
	assert.Equal(t, 0.1, cfg.MiningBaseRate)
	assert.Equal(t, 0.5, cfg.ReferralBonus)
	assert.Equal(t, 1.0, cfg.MinWithdrawal)
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{10, 20}}

	assert.True(t, cfg.IsAdmin(10))
	assert.True(t, cfg.IsAdmin(20))
	assert.False(t, cfg.IsAdmin(30))

	empty := &Config{}
	assert.False(t, empty.IsAdmin(10))
}
