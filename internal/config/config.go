package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultSimulateWorkers is the simulator parallelism when SIMULATE_WORKERS is unset
const DefaultSimulateWorkers = 4

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Redis    RedisConfig
	Game     GameConfig
	Simulate SimulateConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: in-memory repositories are used when empty
}

// Enabled reports whether a Redis URL was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// GameConfig holds gameplay configuration
type GameConfig struct {
	Seed int64 // Optional: a non-zero seed makes every roll reproducible
}

// SimulateConfig holds simulator configuration
type SimulateConfig struct {
	Workers int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	seed, err := getEnvAsInt64OrDefault("DUNGEON_SEED", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Game: GameConfig{
			Seed: seed,
		},
		Simulate: SimulateConfig{
			Workers: getEnvAsIntOrDefault("SIMULATE_WORKERS", DefaultSimulateWorkers),
		},
	}

	if cfg.Simulate.Workers < 1 {
		cfg.Simulate.Workers = 1
	}

	return cfg, nil
}

// LoadBot loads configuration and validates the fields the Discord bot needs
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}
