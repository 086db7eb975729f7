package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Skelly0/DuelBot/internal/domain/settings"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
	"github.com/redis/go-redis/v9"
)

// settingsKeyPrefix namespaces the per-guild settings blobs
const settingsKeyPrefix = "duelbot:settings:"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed settings repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

// Get retrieves the settings for a guild
func (r *redisRepository) Get(ctx context.Context, guildID string) (*settings.Settings, error) {
	data, err := r.client.Get(ctx, settingsKeyPrefix+guildID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, duelerr.NotFoundf("settings for guild %s not found", guildID)
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var s settings.Settings
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to deserialize settings: %w", err)
	}
	if s.TripleStanceRoles == nil {
		s.TripleStanceRoles = []string{}
	}
	if s.Moderators == nil {
		s.Moderators = []string{}
	}

	return &s, nil
}

// Save replaces the settings blob for the guild
func (r *redisRepository) Save(ctx context.Context, s *settings.Settings) error {
	if s == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if s.GuildID == "" {
		return fmt.Errorf("guild ID cannot be empty")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := r.client.Set(ctx, settingsKeyPrefix+s.GuildID, string(data), 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
