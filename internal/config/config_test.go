package config_test

import (
	"testing"
	"time"

	"github.com/Skelly0/DuelBot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Bagr", "Radae", "Darda", "Tigr", "Riposje", "Tortad"}, cfg.Duel.Stances)
	assert.False(t, cfg.Duel.AsymmetricDistanceFour)
	assert.Equal(t, "Chaurus", cfg.Duel.TalentMarker)
	assert.Equal(t, 1, cfg.Duel.TalentBonus)
	assert.Equal(t, -3, cfg.Duel.ModifierMin)
	assert.Equal(t, 3, cfg.Duel.ModifierMax)
	assert.Equal(t, 24*time.Hour, cfg.Timeouts.Match)
	assert.Equal(t, time.Hour, cfg.Timeouts.Accept)
	assert.Equal(t, 2*time.Hour, cfg.Timeouts.Idle)
	assert.Equal(t, 5*time.Minute, cfg.Timeouts.SweepInterval)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.CancelConfirm)
	assert.Empty(t, cfg.Storage.RedisURL)
	assert.Empty(t, cfg.Discord.GuildID)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DISCORD_GUILD_ID", "guild-1")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("DUEL_STANCES", "A,B,C,D,E,F")
	t.Setenv("DUEL_ASYMMETRIC_DISTANCE_FOUR", "true")
	t.Setenv("DUEL_MODIFIER_MAX", "5")
	t.Setenv("DUEL_IDLE_TIMEOUT", "45m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "guild-1", cfg.Discord.GuildID)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Storage.RedisURL)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, cfg.Duel.Stances)
	assert.True(t, cfg.Duel.AsymmetricDistanceFour)
	assert.Equal(t, 5, cfg.Duel.ModifierMax)
	assert.Equal(t, 45*time.Minute, cfg.Timeouts.Idle)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing token", env: map[string]string{"DISCORD_TOKEN": "", "DISCORD_APP_ID": "app"}},
		{name: "missing app id", env: map[string]string{"DISCORD_TOKEN": "token", "DISCORD_APP_ID": ""}},
		{name: "five stances", env: map[string]string{"DUEL_STANCES": "A,B,C,D,E"}},
		{name: "inverted modifier range", env: map[string]string{"DUEL_MODIFIER_MIN": "2", "DUEL_MODIFIER_MAX": "1"}},
		{name: "bad duration", env: map[string]string{"DUEL_MATCH_TIMEOUT": "forever"}},
		{name: "zero sweep interval", env: map[string]string{"DUEL_SWEEP_INTERVAL": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
