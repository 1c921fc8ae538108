package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/collectabot/collect-api/internal/entities/catalog"
	redisclient "github.com/collectabot/collect-api/internal/redis"
	"github.com/collectabot/collect-api/internal/repositories/inventory"
	"github.com/collectabot/collect-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    inventory.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())

	repo, err := inventory.NewRedis(&inventory.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestAppendAndGet() {
	char := testutils.CreateTestCharacterWithTier("char_1", catalog.TierRare)

	appendOut, err := s.repo.Append(s.ctx, inventory.AppendInput{
		UserID:    testutils.TestUserID,
		Character: char,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), appendOut.Total)

	getOut, err := s.repo.Get(s.ctx, inventory.GetInput{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Require().Len(getOut.Characters, 1)
	s.Equal("char_1", getOut.Characters[0].ID)
	s.Equal(int64(1), getOut.Counts["char_1"])
}

func (s *RedisRepositoryTestSuite) TestAppendDuplicatesAllowed() {
	char := testutils.CreateTestCharacter("char_1")

	for i := 1; i <= 3; i++ {
		appendOut, err := s.repo.Append(s.ctx, inventory.AppendInput{
			UserID:    testutils.TestUserID,
			Character: char,
		})
		s.Require().NoError(err)
		s.Equal(int64(i), appendOut.Total)
	}

	getOut, err := s.repo.Get(s.ctx, inventory.GetInput{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Len(getOut.Characters, 3, "each grant is its own instance")
	s.Equal(int64(3), getOut.Counts["char_1"])
}

func (s *RedisRepositoryTestSuite) TestGetPreservesGrantOrder() {
	for _, id := range []string{"first", "second", "third"} {
		_, err := s.repo.Append(s.ctx, inventory.AppendInput{
			UserID:    testutils.TestUserID,
			Character: testutils.CreateTestCharacter(id),
		})
		s.Require().NoError(err)
	}

	getOut, err := s.repo.Get(s.ctx, inventory.GetInput{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Require().Len(getOut.Characters, 3)
	s.Equal("first", getOut.Characters[0].ID)
	s.Equal("second", getOut.Characters[1].ID)
	s.Equal("third", getOut.Characters[2].ID)
}

func (s *RedisRepositoryTestSuite) TestGetUnknownUserIsEmpty() {
	getOut, err := s.repo.Get(s.ctx, inventory.GetInput{UserID: "nobody"})
	s.Require().NoError(err)
	s.Empty(getOut.Characters)
	s.Empty(getOut.Counts)
}

func (s *RedisRepositoryTestSuite) TestAppendSnapshotIsStable() {
	char := testutils.CreateTestCharacter("char_1")
	char.Name = "Original Name"

	_, err := s.repo.Append(s.ctx, inventory.AppendInput{
		UserID:    testutils.TestUserID,
		Character: char,
	})
	s.Require().NoError(err)

	// Later catalog edits do not rewrite what the user owns
	char.Name = "Renamed"

	getOut, err := s.repo.Get(s.ctx, inventory.GetInput{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal("Original Name", getOut.Characters[0].Name)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, inventory.AppendInput{Character: testutils.CreateTestCharacter("c")})
	s.Error(err)

	_, err = s.repo.Append(s.ctx, inventory.AppendInput{UserID: testutils.TestUserID})
	s.Error(err)

	_, err = s.repo.Get(s.ctx, inventory.GetInput{})
	s.Error(err)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
