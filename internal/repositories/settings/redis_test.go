package settings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Skelly0/DuelBot/internal/domain/settings"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	in := &settings.Settings{
		GuildID:            "guild-1",
		TalentBonusEnabled: true,
		TripleStanceRoles:  []string{"role-1"},
		Moderators:         []string{"user-1"},
		UpdatedAt:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(in)
	s.Require().NoError(err)

	s.mock.ExpectSet("duelbot:settings:guild-1", string(data), 0).SetVal("OK")

	s.NoError(s.repo.Save(ctx, in))
}

func (s *RedisRepoTestSuite) TestSave_DependencyError() {
	ctx := context.Background()
	in := settings.Default("guild-1")
	data, err := json.Marshal(in)
	s.Require().NoError(err)

	s.mock.ExpectSet("duelbot:settings:guild-1", string(data), 0).SetErr(errors.New("redis error"))

	s.Error(s.repo.Save(ctx, in))
}

func (s *RedisRepoTestSuite) TestSave_Validation() {
	ctx := context.Background()
	s.Error(s.repo.Save(ctx, nil))
	s.Error(s.repo.Save(ctx, &settings.Settings{}))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	stored := &settings.Settings{
		GuildID:            "guild-1",
		TalentBonusEnabled: true,
		TripleStanceRoles:  []string{"role-1", "role-2"},
		Moderators:         []string{"user-1"},
		UpdatedAt:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(stored)
	s.Require().NoError(err)

	s.mock.ExpectGet("duelbot:settings:guild-1").SetVal(string(data))

	got, err := s.repo.Get(ctx, "guild-1")
	s.Require().NoError(err)
	s.Equal(stored, got)
}

func (s *RedisRepoTestSuite) TestGet_NullListsBecomeEmpty() {
	ctx := context.Background()
	s.mock.ExpectGet("duelbot:settings:guild-1").SetVal(`{"guild_id":"guild-1","talent_bonus_enabled":false,"triple_stance_roles":null,"moderators":null}`)

	got, err := s.repo.Get(ctx, "guild-1")
	s.Require().NoError(err)
	s.NotNil(got.TripleStanceRoles)
	s.NotNil(got.Moderators)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	ctx := context.Background()
	s.mock.ExpectGet("duelbot:settings:guild-9").RedisNil()

	_, err := s.repo.Get(ctx, "guild-9")
	s.True(duelerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_DependencyError() {
	ctx := context.Background()
	s.mock.ExpectGet("duelbot:settings:guild-1").SetErr(errors.New("connection refused"))

	_, err := s.repo.Get(ctx, "guild-1")
	s.Error(err)
	s.False(duelerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_CorruptData() {
	ctx := context.Background()
	s.mock.ExpectGet("duelbot:settings:guild-1").SetVal("{not json")

	_, err := s.repo.Get(ctx, "guild-1")
	s.Error(err)
}
