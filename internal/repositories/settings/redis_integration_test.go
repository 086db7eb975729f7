//go:build integration

package settings_test

import (
	"context"
	"testing"
	"time"

	"github.com/Skelly0/DuelBot/internal/domain/settings"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
	settingsrepo "github.com/Skelly0/DuelBot/internal/repositories/settings"
	"github.com/Skelly0/DuelBot/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := settingsrepo.NewRedisRepository(&settingsrepo.RedisRepoConfig{Client: client})
	ctx := context.Background()

	_, err := repo.Get(ctx, "guild-1")
	assert.True(t, duelerr.IsNotFound(err))

	in := &settings.Settings{
		GuildID:            "guild-1",
		TalentBonusEnabled: true,
		TripleStanceRoles:  []string{"role-1"},
		Moderators:         []string{"user-1"},
		UpdatedAt:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, in))

	got, err := repo.Get(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, in, got)

	in.TripleStanceRoles = nil
	require.NoError(t, repo.Save(ctx, in))
	got, err = repo.Get(ctx, "guild-1")
	require.NoError(t, err)
	assert.Empty(t, got.TripleStanceRoles)
}
