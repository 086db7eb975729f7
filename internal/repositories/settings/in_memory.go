package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/Skelly0/DuelBot/internal/domain/settings"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu      sync.RWMutex
	byGuild map[string]*settings.Settings
}

// NewInMemoryRepository creates a new in-memory settings repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		byGuild: make(map[string]*settings.Settings),
	}
}

// Get retrieves the settings for a guild
func (r *inMemoryRepository) Get(_ context.Context, guildID string) (*settings.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.byGuild[guildID]
	if !exists {
		return nil, duelerr.NotFoundf("settings for guild %s not found", guildID)
	}
	return s.Clone(), nil
}

// Save stores a copy of the settings
func (r *inMemoryRepository) Save(_ context.Context, s *settings.Settings) error {
	if s == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if s.GuildID == "" {
		return fmt.Errorf("guild ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byGuild[s.GuildID] = s.Clone()
	return nil
}
