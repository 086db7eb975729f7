package settings

import (
	"context"
	"testing"

	"github.com/Skelly0/DuelBot/internal/domain/settings"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, "guild-1")
	assert.True(t, duelerr.IsNotFound(err))

	in := settings.Default("guild-1")
	in.Moderators = append(in.Moderators, "user-1")
	require.NoError(t, repo.Save(ctx, in))

	// stored copy is detached from the caller's value
	in.Moderators[0] = "user-2"

	got, err := repo.Get(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, got.Moderators)

	got.Moderators[0] = "user-3"
	again, err := repo.Get(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, again.Moderators)

	assert.Error(t, repo.Save(ctx, nil))
	assert.Error(t, repo.Save(ctx, &settings.Settings{}))
}
