package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
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
	s.repo = NewRedis(s.mockClient)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testPlayer() *character.Player {
	p := character.NewPlayer(character.ClassKnight)
	p.ID = "player-1"
	p.OwnerID = "owner-1"
	p.AddItem(equipment.MustLookup(equipment.VitalityAmulet))
	return p
}

func (s *RedisRepoTestSuite) encoded(p *character.Player) string {
	data, err := json.Marshal(ToData(p))
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	p := s.testPlayer()

	s.mock.ExpectExists("player:player-1").SetVal(0)
	s.mock.ExpectSet("player:player-1", s.encoded(p), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:players", "player-1").SetVal(1)

	s.NoError(s.repo.Create(ctx, p))
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	s.mock.ExpectExists("player:player-1").SetVal(1)

	err := s.repo.Create(context.Background(), s.testPlayer())

	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_Validation() {
	ctx := context.Background()

	s.True(dnderr.IsInvalidArgument(s.repo.Create(ctx, nil)))
	s.True(dnderr.IsInvalidArgument(s.repo.Create(ctx, &character.Player{ID: "x"})))
}

func (s *RedisRepoTestSuite) TestGet() {
	p := s.testPlayer()
	s.mock.ExpectGet("player:player-1").SetVal(s.encoded(p))

	got, err := s.repo.Get(context.Background(), "player-1")

	s.Require().NoError(err)
	s.Equal(p.MaxHP, got.MaxHP)
	s.Equal(35, got.MaxHP, "amulet bonus is stored, not applied twice")
	s.Equal(10, got.GetBonusForType(equipment.EffectMaxHP))
	s.Len(got.Inventory, 2)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("player:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")

	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_RedisError() {
	s.mock.ExpectGet("player:player-1").SetErr(errors.New("redis error"))

	_, err := s.repo.Get(context.Background(), "player-1")

	s.True(dnderr.IsInternal(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	p := s.testPlayer()
	p.Gold = 99

	s.mock.ExpectExists("player:player-1").SetVal(1)
	s.mock.ExpectSet("player:player-1", s.encoded(p), 0).SetVal("OK")

	s.NoError(s.repo.Update(context.Background(), p))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	s.mock.ExpectExists("player:player-1").SetVal(0)

	err := s.repo.Update(context.Background(), s.testPlayer())

	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	p := s.testPlayer()

	s.mock.ExpectGet("player:player-1").SetVal(s.encoded(p))
	s.mock.ExpectDel("player:player-1").SetVal(1)
	s.mock.ExpectSRem("owner:owner-1:players", "player-1").SetVal(1)

	s.NoError(s.repo.Delete(context.Background(), "player-1"))
}

func (s *RedisRepoTestSuite) TestGetByOwner_SkipsDanglingIDs() {
	p := s.testPlayer()

	s.mock.ExpectSMembers("owner:owner-1:players").SetVal([]string{"player-1", "ghost"})
	s.mock.ExpectGet("player:player-1").SetVal(s.encoded(p))
	s.mock.ExpectGet("player:ghost").RedisNil()

	players, err := s.repo.GetByOwner(context.Background(), "owner-1")

	s.Require().NoError(err)
	s.Len(players, 1)
}
