package claimstats_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	redisclient "github.com/collectabot/collect-api/internal/redis"
	"github.com/collectabot/collect-api/internal/repositories/claimstats"
	"github.com/collectabot/collect-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    claimstats.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())

	repo, err := claimstats.NewRedis(&claimstats.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestIncrementClaim() {
	out, err := s.repo.IncrementClaim(s.ctx, claimstats.IncrementClaimInput{
		ChatID: testutils.TestChatID,
		UserID: testutils.TestUserID,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), out.UserGroupTotal)
	s.Equal(int64(1), out.GroupTotal)

	out, err = s.repo.IncrementClaim(s.ctx, claimstats.IncrementClaimInput{
		ChatID: testutils.TestChatID,
		UserID: testutils.TestUserID,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), out.UserGroupTotal)
	s.Equal(int64(2), out.GroupTotal)
}

func (s *RedisRepositoryTestSuite) TestGroupTotals() {
	for _, userID := range []string{"alice", "alice", "bob"} {
		_, err := s.repo.IncrementClaim(s.ctx, claimstats.IncrementClaimInput{
			ChatID: testutils.TestChatID,
			UserID: userID,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GroupTotals(s.ctx, claimstats.GroupTotalsInput{ChatID: testutils.TestChatID})
	s.Require().NoError(err)
	s.Equal(int64(2), out.ByUser["alice"])
	s.Equal(int64(1), out.ByUser["bob"])
	s.Equal(int64(3), out.Total)
}

func (s *RedisRepositoryTestSuite) TestGroupTotalsEmptyGroup() {
	out, err := s.repo.GroupTotals(s.ctx, claimstats.GroupTotalsInput{ChatID: "quiet_chat"})
	s.Require().NoError(err)
	s.Empty(out.ByUser)
	s.Equal(int64(0), out.Total)
}

func (s *RedisRepositoryTestSuite) TestUserTotalSpansGroups() {
	for _, chatID := range []string{"chat_a", "chat_b", "chat_b"} {
		_, err := s.repo.IncrementClaim(s.ctx, claimstats.IncrementClaimInput{
			ChatID: chatID,
			UserID: testutils.TestUserID,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.UserTotal(s.ctx, claimstats.UserTotalInput{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(int64(3), out.Total)

	// Per-group counters stay separate
	groupOut, err := s.repo.GroupTotals(s.ctx, claimstats.GroupTotalsInput{ChatID: "chat_a"})
	s.Require().NoError(err)
	s.Equal(int64(1), groupOut.Total)
}

func (s *RedisRepositoryTestSuite) TestUserTotalUnknownUser() {
	out, err := s.repo.UserTotal(s.ctx, claimstats.UserTotalInput{UserID: "nobody"})
	s.Require().NoError(err)
	s.Equal(int64(0), out.Total)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.IncrementClaim(s.ctx, claimstats.IncrementClaimInput{UserID: "u"})
	s.Error(err)

	_, err = s.repo.IncrementClaim(s.ctx, claimstats.IncrementClaimInput{ChatID: "c"})
	s.Error(err)

	_, err = s.repo.GroupTotals(s.ctx, claimstats.GroupTotalsInput{})
	s.Error(err)

	_, err = s.repo.UserTotal(s.ctx, claimstats.UserTotalInput{})
	s.Error(err)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
