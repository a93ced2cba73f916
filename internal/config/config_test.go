package config_test

import (
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"DISCORD_TOKEN", "DISCORD_APP_ID", "DISCORD_GUILD_ID", "REDIS_URL", "DUNGEON_SEED", "SIMULATE_WORKERS"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, int64(0), cfg.Game.Seed)
	assert.Equal(t, config.DefaultSimulateWorkers, cfg.Simulate.Workers)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("DUNGEON_SEED", "42")
	t.Setenv("SIMULATE_WORKERS", "8")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 8, cfg.Simulate.Workers)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIMULATE_WORKERS", "-3")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Simulate.Workers)

	t.Setenv("SIMULATE_WORKERS", "many")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSimulateWorkers, cfg.Simulate.Workers)

	t.Setenv("DUNGEON_SEED", "abc")
	_, err = config.Load()
	assert.ErrorContains(t, err, "DUNGEON_SEED")
}

func TestLoadBot_RequiresDiscord(t *testing.T) {
	clearEnv(t)

	_, err := config.LoadBot()
	assert.ErrorContains(t, err, "DISCORD_TOKEN")

	t.Setenv("DISCORD_TOKEN", "token")
	_, err = config.LoadBot()
	assert.ErrorContains(t, err, "DISCORD_APP_ID")

	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("DISCORD_GUILD_ID", "guild")
	cfg, err := config.LoadBot()
	require.NoError(t, err)
	assert.Equal(t, "guild", cfg.Discord.GuildID)
}
