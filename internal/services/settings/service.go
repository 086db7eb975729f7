package settings

//go:generate mockgen -destination=mock/mock_service.go -package=mocksettings -source=service.go

import (
	"context"
	"log"
	"slices"
	"sync"

	"github.com/Skelly0/DuelBot/internal/clock"
	"github.com/Skelly0/DuelBot/internal/domain/settings"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
	settingsrepo "github.com/Skelly0/DuelBot/internal/repositories/settings"
)

// Service caches guild settings and writes every change through to the repository
type Service interface {
	// Load warms the cache for the given guilds
	Load(ctx context.Context, guildIDs []string) error

	// Get returns the guild's settings, falling back to defaults
	Get(ctx context.Context, guildID string) (*settings.Settings, error)

	// ToggleTalentBonus flips the talent bonus flag and returns the new settings
	ToggleTalentBonus(ctx context.Context, guildID string) (*settings.Settings, error)

	// AddTripleStanceRole lets members with the role declare three stances
	AddTripleStanceRole(ctx context.Context, guildID, roleID string) (*settings.Settings, error)

	// RemoveTripleStanceRole revokes a triple-stance role
	RemoveTripleStanceRole(ctx context.Context, guildID, roleID string) (*settings.Settings, error)

	// AddModerator adds a user to the duel moderator list
	AddModerator(ctx context.Context, guildID, userID string) (*settings.Settings, error)

	// RemoveModerator removes a user from the duel moderator list
	RemoveModerator(ctx context.Context, guildID, userID string) (*settings.Settings, error)
}

type service struct {
	repository   settingsrepo.Repository
	timeProvider clock.TimeProvider

	// mu guards cache and serializes read-modify-write updates
	mu    sync.Mutex
	cache map[string]*settings.Settings
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository   settingsrepo.Repository // Required
	TimeProvider clock.TimeProvider      // Optional, will use system time if nil
}

// NewService creates a new settings service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = clock.NewSystemTimeProvider()
	}
	return &service{
		repository:   cfg.Repository,
		timeProvider: tp,
		cache:        make(map[string]*settings.Settings),
	}
}

// Load warms the cache for the given guilds
func (s *service) Load(ctx context.Context, guildIDs []string) error {
	for _, guildID := range guildIDs {
		if _, err := s.Get(ctx, guildID); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the guild's settings
func (s *service) Get(ctx context.Context, guildID string) (*settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx, guildID)
	if err != nil {
		return nil, err
	}
	return current.Clone(), nil
}

// ToggleTalentBonus flips the talent bonus flag
func (s *service) ToggleTalentBonus(ctx context.Context, guildID string) (*settings.Settings, error) {
	return s.update(ctx, guildID, func(next *settings.Settings) error {
		next.TalentBonusEnabled = !next.TalentBonusEnabled
		return nil
	})
}

// AddTripleStanceRole grants a role triple stances
func (s *service) AddTripleStanceRole(ctx context.Context, guildID, roleID string) (*settings.Settings, error) {
	return s.update(ctx, guildID, func(next *settings.Settings) error {
		if roleID == "" {
			return duelerr.InvalidArgument("role is required")
		}
		if slices.Contains(next.TripleStanceRoles, roleID) {
			return duelerr.Validation("that role can already declare three stances")
		}
		next.TripleStanceRoles = append(next.TripleStanceRoles, roleID)
		return nil
	})
}

// RemoveTripleStanceRole revokes a triple-stance role
func (s *service) RemoveTripleStanceRole(ctx context.Context, guildID, roleID string) (*settings.Settings, error) {
	return s.update(ctx, guildID, func(next *settings.Settings) error {
		i := slices.Index(next.TripleStanceRoles, roleID)
		if i < 0 {
			return duelerr.Validation("that role cannot declare three stances")
		}
		next.TripleStanceRoles = slices.Delete(next.TripleStanceRoles, i, i+1)
		return nil
	})
}

// AddModerator adds a duel moderator
func (s *service) AddModerator(ctx context.Context, guildID, userID string) (*settings.Settings, error) {
	return s.update(ctx, guildID, func(next *settings.Settings) error {
		if userID == "" {
			return duelerr.InvalidArgument("user is required")
		}
		if next.IsModerator(userID) {
			return duelerr.Validation("that user is already a moderator")
		}
		next.Moderators = append(next.Moderators, userID)
		return nil
	})
}

// RemoveModerator removes a duel moderator
func (s *service) RemoveModerator(ctx context.Context, guildID, userID string) (*settings.Settings, error) {
	return s.update(ctx, guildID, func(next *settings.Settings) error {
		i := slices.Index(next.Moderators, userID)
		if i < 0 {
			return duelerr.Validation("that user is not a moderator")
		}
		next.Moderators = slices.Delete(next.Moderators, i, i+1)
		return nil
	})
}

// update applies fn to a copy, saves it, and only then replaces the cached value
func (s *service) update(ctx context.Context, guildID string, fn func(next *settings.Settings) error) (*settings.Settings, error) {
	if guildID == "" {
		return nil, duelerr.InvalidArgument("settings can only be changed inside a server")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx, guildID)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = s.timeProvider.Now()

	if err := s.repository.Save(ctx, next); err != nil {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeInternal, "failed to save settings").
			WithMeta("guild_id", guildID)
	}
	s.cache[guildID] = next

	log.Printf("Settings for guild %s updated: talent=%t triple_roles=%d moderators=%d",
		guildID, next.TalentBonusEnabled, len(next.TripleStanceRoles), len(next.Moderators))
	return next.Clone(), nil
}

// current returns the cached settings, loading or defaulting on a miss. Caller holds s.mu.
func (s *service) current(ctx context.Context, guildID string) (*settings.Settings, error) {
	if cached, ok := s.cache[guildID]; ok {
		return cached, nil
	}

	loaded, err := s.repository.Get(ctx, guildID)
	switch {
	case err == nil:
	case duelerr.IsNotFound(err):
		loaded = settings.Default(guildID)
	default:
		return nil, duelerr.WrapWithCode(err, duelerr.CodeInternal, "failed to load settings").
			WithMeta("guild_id", guildID)
	}

	s.cache[guildID] = loaded
	return loaded, nil
}
