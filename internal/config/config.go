package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Storage  StorageConfig
	Duel     DuelConfig
	Timeouts TimeoutConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// StorageConfig selects where guild settings are persisted. Redis wins over
// SQLite; with neither set, settings live in memory.
type StorageConfig struct {
	RedisURL       string `env:"REDIS_URL"`
	SettingsDBPath string `env:"SETTINGS_DB_PATH"`
}

// DuelConfig holds the game rules that are fixed per deployment
type DuelConfig struct {
	Stances                []string `env:"DUEL_STANCES" envSeparator:"," envDefault:"Bagr,Radae,Darda,Tigr,Riposje,Tortad"`
	AsymmetricDistanceFour bool     `env:"DUEL_ASYMMETRIC_DISTANCE_FOUR" envDefault:"false"`
	TalentMarker           string   `env:"DUEL_TALENT_MARKER" envDefault:"Chaurus"`
	TalentBonus            int      `env:"DUEL_TALENT_BONUS" envDefault:"1"`
	ModifierMin            int      `env:"DUEL_MODIFIER_MIN" envDefault:"-3"`
	ModifierMax            int      `env:"DUEL_MODIFIER_MAX" envDefault:"3"`
}

// TimeoutConfig holds match expiry and sweep timing
type TimeoutConfig struct {
	Match         time.Duration `env:"DUEL_MATCH_TIMEOUT" envDefault:"24h"`
	Accept        time.Duration `env:"DUEL_ACCEPT_TIMEOUT" envDefault:"1h"`
	Idle          time.Duration `env:"DUEL_IDLE_TIMEOUT" envDefault:"2h"`
	SweepInterval time.Duration `env:"DUEL_SWEEP_INTERVAL" envDefault:"5m"`
	CancelConfirm time.Duration `env:"DUEL_CANCEL_CONFIRM_TIMEOUT" envDefault:"30s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and value ranges
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	if len(c.Duel.Stances) != 6 {
		return fmt.Errorf("DUEL_STANCES must list exactly 6 stances, got %d", len(c.Duel.Stances))
	}
	if c.Duel.ModifierMin > c.Duel.ModifierMax {
		return fmt.Errorf("DUEL_MODIFIER_MIN (%d) exceeds DUEL_MODIFIER_MAX (%d)", c.Duel.ModifierMin, c.Duel.ModifierMax)
	}
	if c.Timeouts.SweepInterval <= 0 {
		return fmt.Errorf("DUEL_SWEEP_INTERVAL must be positive")
	}
	if c.Timeouts.CancelConfirm <= 0 {
		return fmt.Errorf("DUEL_CANCEL_CONFIRM_TIMEOUT must be positive")
	}
	return nil
}
