package gamestate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/zombierpg/survivor-api/internal/entities/survival"
	"github.com/zombierpg/survivor-api/internal/errors"
	"github.com/zombierpg/survivor-api/internal/pkg/clock"
	"github.com/zombierpg/survivor-api/internal/pkg/idgen"
	redisclient "github.com/zombierpg/survivor-api/internal/redis"
	"github.com/zombierpg/survivor-api/internal/repositories/gamestate"
	"github.com/zombierpg/survivor-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    gamestate.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()

	repo, err := gamestate.NewRedis(&gamestate.RedisConfig{
		Client:      s.client,
		Clock:       clock.NewFixed(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)),
		IDGenerator: idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) save(id string) *survival.GameState {
	state := testutils.NewTestState(id)
	out, err := s.repo.Save(s.ctx, gamestate.SaveInput{State: state})
	s.Require().NoError(err)
	return out.State
}

func (s *RedisRepositoryTestSuite) TestSaveGeneratesID() {
	state := testutils.NewTestState("")

	out, err := s.repo.Save(s.ctx, gamestate.SaveInput{State: state})

	s.NoError(err)
	s.Equal("char_1", out.State.Character.ID)
	s.Equal("1.0.0", out.State.GameVersion)
	s.NotEmpty(out.State.SaveDate)
}

func (s *RedisRepositoryTestSuite) TestSaveKeepsExistingID() {
	out, err := s.repo.Save(s.ctx, gamestate.SaveInput{State: testutils.NewTestState("keep_me")})

	s.NoError(err)
	s.Equal("keep_me", out.State.Character.ID)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoundTrip() {
	saved := s.save("rt_1")

	out, err := s.repo.Get(s.ctx, gamestate.GetInput{ID: "rt_1"})

	s.NoError(err)
	s.Equal(saved.Character, out.State.Character)
	s.Equal(saved.SaveDate, out.State.SaveDate)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, gamestate.GetInput{ID: "missing"})

	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteIsIdempotent() {
	s.save("del_1")

	_, err := s.repo.Delete(s.ctx, gamestate.DeleteInput{ID: "del_1"})
	s.NoError(err)

	_, err = s.repo.Delete(s.ctx, gamestate.DeleteInput{ID: "del_1"})
	s.NoError(err)

	ids, err := s.client.SMembers(s.ctx, "survivor:index").Result()
	s.NoError(err)
	s.NotContains(ids, "del_1")

	_, err = s.repo.Get(s.ctx, gamestate.GetInput{ID: "del_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListSummariesOrdersByLastUpdatedDesc() {
	for i, id := range []string{"old", "mid", "new"} {
		state := testutils.NewTestState(id)
		state.Character.LastUpdated = time.Date(2025, 6, 1+i, 0, 0, 0, 0, time.UTC).
			Format(time.RFC3339)
		_, err := s.repo.Save(s.ctx, gamestate.SaveInput{State: state})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListSummaries(s.ctx, gamestate.ListSummariesInput{})

	s.NoError(err)
	s.Require().Len(out.Summaries, 3)
	s.Equal("new", out.Summaries[0].ID)
	s.Equal("mid", out.Summaries[1].ID)
	s.Equal("old", out.Summaries[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListSummariesSkipsAndPrunesCorruptSlots() {
	s.save("good")
	s.Require().NoError(s.client.Set(s.ctx, "survivor:bad", "{not json", 0).Err())
	s.Require().NoError(s.client.SAdd(s.ctx, "survivor:index", "bad").Err())
	s.Require().NoError(s.client.SAdd(s.ctx, "survivor:index", "dangling").Err())

	out, err := s.repo.ListSummaries(s.ctx, gamestate.ListSummariesInput{})

	s.NoError(err)
	s.Require().Len(out.Summaries, 1)
	s.Equal("good", out.Summaries[0].ID)

	ids, err := s.client.SMembers(s.ctx, "survivor:index").Result()
	s.NoError(err)
	s.Equal([]string{"good"}, ids)
}

func (s *RedisRepositoryTestSuite) TestExportIsByteIdentical() {
	s.save("exp_1")

	stored, err := s.client.Get(s.ctx, "survivor:exp_1").Result()
	s.Require().NoError(err)

	out, err := s.repo.Export(s.ctx, gamestate.ExportInput{ID: "exp_1"})

	s.NoError(err)
	s.Equal([]byte(stored), out.Data)
}

func (s *RedisRepositoryTestSuite) TestExportNotFound() {
	_, err := s.repo.Export(s.ctx, gamestate.ExportInput{ID: "missing"})

	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestMigrateLegacyAssignsIDAndRemovesKey() {
	legacy := `{"character":{"name":"Superviviente","level":2,` +
		`"stats":{"fuerza":2,"agilidad":2,"inteligencia":2,"resistencia":3,"carisma":1},` +
		`"personalSkills":[],"specialSkills":["sigilo","cazador"],` +
		`"health":{"current":9,"max":11},"inventory":[],"inventoryCapacity":15,` +
		`"createdAt":"2025-01-01T00:00:00Z","lastUpdated":"2025-01-02T00:00:00Z"},` +
		`"gameVersion":"1.0.0","saveDate":"2025-01-02T00:00:00Z"}`
	s.Require().NoError(s.client.Set(s.ctx, "zombie:gamestate", legacy, 0).Err())

	out, err := s.repo.MigrateLegacy(s.ctx, gamestate.MigrateLegacyInput{})

	s.NoError(err)
	s.True(out.Migrated)
	s.Equal("char_1", out.CharacterID)

	got, err := s.repo.Get(s.ctx, gamestate.GetInput{ID: "char_1"})
	s.NoError(err)
	s.Equal("Superviviente", got.State.Character.Name)

	exists, err := s.client.Exists(s.ctx, "zombie:gamestate").Result()
	s.NoError(err)
	s.Zero(exists)
}

func (s *RedisRepositoryTestSuite) TestMigrateLegacyNothingToDo() {
	out, err := s.repo.MigrateLegacy(s.ctx, gamestate.MigrateLegacyInput{})

	s.NoError(err)
	s.False(out.Migrated)
}

func (s *RedisRepositoryTestSuite) TestMigrateLegacyLeavesDraftAlone() {
	s.Require().NoError(s.client.Set(s.ctx, "zombie:draft", `{"name":"Ava"}`, 0).Err())

	out, err := s.repo.MigrateLegacy(s.ctx, gamestate.MigrateLegacyInput{})

	s.NoError(err)
	s.False(out.Migrated)

	exists, err := s.client.Exists(s.ctx, "zombie:draft").Result()
	s.NoError(err)
	s.EqualValues(1, exists)
}

func (s *RedisRepositoryTestSuite) TestMigrateLegacyDiscardsCorruptRecord() {
	s.Require().NoError(s.client.Set(s.ctx, "zombie:gamestate", "garbage", 0).Err())

	out, err := s.repo.MigrateLegacy(s.ctx, gamestate.MigrateLegacyInput{})

	s.NoError(err)
	s.False(out.Migrated)

	exists, err := s.client.Exists(s.ctx, "zombie:gamestate").Result()
	s.NoError(err)
	s.Zero(exists)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
