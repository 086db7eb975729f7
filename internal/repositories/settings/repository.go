package settings

//go:generate mockgen -destination=mock/mock_repository.go -package=mocksettings -source=repository.go

import (
	"context"

	"github.com/Skelly0/DuelBot/internal/domain/settings"
)

// Repository defines the interface for settings storage operations
type Repository interface {
	// Get returns the stored settings for a guild, or a not_found error
	Get(ctx context.Context, guildID string) (*settings.Settings, error)

	// Save replaces the stored settings for a guild
	Save(ctx context.Context, s *settings.Settings) error
}
