package spawn_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	messagingmock "github.com/collectabot/collect-api/internal/clients/messaging/mock"
	"github.com/collectabot/collect-api/internal/engine/catalogcache"
	"github.com/collectabot/collect-api/internal/engine/selector"
	"github.com/collectabot/collect-api/internal/entities/catalog"
	"github.com/collectabot/collect-api/internal/errors"
	"github.com/collectabot/collect-api/internal/orchestrators/spawn"
	clockmock "github.com/collectabot/collect-api/internal/pkg/clock/mock"
	"github.com/collectabot/collect-api/internal/pkg/idgen"
	"github.com/collectabot/collect-api/internal/pkg/timer"
	"github.com/collectabot/collect-api/internal/repositories/characters"
	charactersmock "github.com/collectabot/collect-api/internal/repositories/characters/mock"
	"github.com/collectabot/collect-api/internal/repositories/claimstats"
	claimstatsmock "github.com/collectabot/collect-api/internal/repositories/claimstats/mock"
	"github.com/collectabot/collect-api/internal/repositories/inventory"
	inventorymock "github.com/collectabot/collect-api/internal/repositories/inventory/mock"
	"github.com/collectabot/collect-api/internal/repositories/rarity"
	raritymock "github.com/collectabot/collect-api/internal/repositories/rarity/mock"
)

const (
	testChatID = "chat_1"
	testUserID = "user_1"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockChars     *charactersmock.MockRepository
	mockRarity    *raritymock.MockRepository
	mockInventory *inventorymock.MockRepository
	mockClaims    *claimstatsmock.MockRepository
	mockMessenger *messagingmock.MockClient
	cache         *catalogcache.Cache
	scheduler     *timer.Manual
	orchestrator  spawn.Service
	ctx           context.Context
	now           time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockChars = charactersmock.NewMockRepository(s.ctrl)
	s.mockRarity = raritymock.NewMockRepository(s.ctrl)
	s.mockInventory = inventorymock.NewMockRepository(s.ctrl)
	s.mockClaims = claimstatsmock.NewMockRepository(s.ctrl)
	s.mockMessenger = messagingmock.NewMockClient(s.ctrl)
	s.scheduler = timer.NewManual()
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mockClock := clockmock.NewMockClock(s.ctrl)
	mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	// Default rarity policy: global defaults, nothing reserved
	s.mockRarity.EXPECT().
		GetGlobalSettings(gomock.Any(), gomock.Any()).
		Return(&rarity.GetGlobalSettingsOutput{Settings: rarity.DefaultSettings()}, nil).
		AnyTimes()
	s.mockRarity.EXPECT().
		ListReserved(gomock.Any(), gomock.Any()).
		Return(&rarity.ListReservedOutput{OwnerByTier: map[catalog.Tier]string{}}, nil).
		AnyTimes()
	s.mockRarity.EXPECT().
		GetGroupExclusive(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no exclusive")).
		AnyTimes()

	cache, err := catalogcache.New(&catalogcache.Config{
		Repository: s.mockChars,
		Clock:      mockClock,
	})
	s.Require().NoError(err)
	s.cache = cache

	orchestrator, err := spawn.New(&spawn.Config{
		Catalog:    s.cache,
		Rarity:     s.mockRarity,
		Inventory:  s.mockInventory,
		ClaimStats: s.mockClaims,
		Messenger:  s.mockMessenger,
		Selector: selector.New(&selector.Config{
			Rand: rand.New(rand.NewPCG(7, 11)),
		}),
		IDGenerator:   idgen.NewSequential("sess"),
		Clock:         mockClock,
		Scheduler:     s.scheduler,
		DespawnWindow: 10 * time.Minute,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// loadCatalog refreshes the cache with the given characters
func (s *OrchestratorTestSuite) loadCatalog(chars ...*catalog.Character) {
	s.mockChars.EXPECT().
		ListEligible(gomock.Any(), characters.ListEligibleInput{}).
		Return(&characters.ListEligibleOutput{Characters: chars}, nil)
	s.Require().NoError(s.cache.Refresh(s.ctx))
}

func luffy() *catalog.Character {
	return &catalog.Character{
		ID:       "char_luffy",
		Name:     "Monkey D. Luffy",
		Series:   "One Piece",
		Tier:     catalog.TierCommon,
		MediaRef: "media/luffy.png",
	}
}

func (s *OrchestratorTestSuite) forceSpawn(messageRef string) {
	s.mockMessenger.EXPECT().
		PostSpawnAnnouncement(gomock.Any(), testChatID, gomock.Any()).
		Return(messageRef, nil)

	output, err := s.orchestrator.ForceSpawn(s.ctx, &spawn.ForceSpawnInput{ChatID: testChatID})
	s.Require().NoError(err)
	s.Require().True(output.Spawned)
}

func (s *OrchestratorTestSuite) TestActivityLifecycle() {
	s.loadCatalog(luffy())

	_, err := s.orchestrator.ChangeThreshold(s.ctx, &spawn.ChangeThresholdInput{
		ChatID:    testChatID,
		Threshold: 5,
	})
	s.Require().NoError(err)

	// Four events, no spawn
	for i := 0; i < 4; i++ {
		output, err := s.orchestrator.RecordActivity(s.ctx, &spawn.RecordActivityInput{ChatID: testChatID})
		s.Require().NoError(err)
		s.False(output.SpawnTriggered)
	}

	// Fifth event crosses the threshold
	s.mockMessenger.EXPECT().
		PostSpawnAnnouncement(gomock.Any(), testChatID, gomock.Any()).
		Return("msg_1", nil)

	output, err := s.orchestrator.RecordActivity(s.ctx, &spawn.RecordActivityInput{ChatID: testChatID})
	s.Require().NoError(err)
	s.True(output.SpawnTriggered)
	s.Equal(1, s.scheduler.Pending(), "despawn timer armed")

	// The live spawn is visible but does not reveal the name
	view, err := s.orchestrator.GetActiveSpawn(s.ctx, &spawn.GetActiveSpawnInput{ChatID: testChatID})
	s.Require().NoError(err)
	s.Equal(catalog.TierCommon, view.Tier)
	s.Equal(s.now.Add(10*time.Minute), view.Deadline)
	s.NotEmpty(view.SessionID)

	// Wrong guess reveals nothing
	claimOut, err := s.orchestrator.Claim(s.ctx, &spawn.ClaimInput{
		ChatID: testChatID,
		UserID: testUserID,
		Guess:  "Zoro",
	})
	s.Require().NoError(err)
	s.Equal(spawn.OutcomeWrongGuess, claimOut.Outcome)
	s.Nil(claimOut.Character)

	// Correct guess wins and runs the side effects
	s.mockMessenger.EXPECT().DeleteMessage(gomock.Any(), testChatID, "msg_1").Return(nil)
	s.mockInventory.EXPECT().
		Append(gomock.Any(), inventory.AppendInput{UserID: testUserID, Character: luffy()}).
		Return(&inventory.AppendOutput{Total: 1}, nil)
	s.mockClaims.EXPECT().
		IncrementClaim(gomock.Any(), claimstats.IncrementClaimInput{ChatID: testChatID, UserID: testUserID}).
		Return(&claimstats.IncrementClaimOutput{UserGroupTotal: 1, GroupTotal: 1}, nil)

	claimOut, err = s.orchestrator.Claim(s.ctx, &spawn.ClaimInput{
		ChatID: testChatID,
		UserID: testUserID,
		Guess:  "luffy",
	})
	s.Require().NoError(err)
	s.Equal(spawn.OutcomeWon, claimOut.Outcome)
	s.Require().NotNil(claimOut.Character)
	s.Equal("char_luffy", claimOut.Character.ID)
	s.NoError(claimOut.SideEffectErr)

	// A later correct guess from someone else is too late
	claimOut, err = s.orchestrator.Claim(s.ctx, &spawn.ClaimInput{
		ChatID: testChatID,
		UserID: "user_2",
		Guess:  "Monkey D. Luffy",
	})
	s.Require().NoError(err)
	s.Equal(spawn.OutcomeAlreadyResolved, claimOut.Outcome)
	s.Nil(claimOut.Character)

	_, err = s.orchestrator.GetActiveSpawn(s.ctx, &spawn.GetActiveSpawnInput{ChatID: testChatID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestForceSpawnSingleFlight() {
	s.loadCatalog(luffy())
	s.forceSpawn("msg_1")

	// A second force-spawn while one is live is declined, not an error
	output, err := s.orchestrator.ForceSpawn(s.ctx, &spawn.ForceSpawnInput{ChatID: testChatID})
	s.Require().NoError(err)
	s.False(output.Spawned)
	s.Equal(1, s.scheduler.Pending())
}

func (s *OrchestratorTestSuite) TestConcurrentSpawnAttemptsOneActive() {
	s.loadCatalog(luffy())

	// The in-flight marker admits a single placement no matter how many
	// attempts race
	s.mockMessenger.EXPECT().
		PostSpawnAnnouncement(gomock.Any(), testChatID, gomock.Any()).
		Return("msg_1", nil).
		Times(1)

	const attempts = 20
	spawned := make([]bool, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			out, err := s.orchestrator.ForceSpawn(s.ctx, &spawn.ForceSpawnInput{ChatID: testChatID})
			s.Require().NoError(err)
			spawned[n] = out.Spawned
		}(i)
	}
	wg.Wait()

	placed := 0
	for _, ok := range spawned {
		if ok {
			placed++
		}
	}
	s.Equal(1, placed, "exactly one attempt places the spawn")
	s.Equal(1, s.scheduler.Pending(), "one despawn timer armed")

	view, err := s.orchestrator.GetActiveSpawn(s.ctx, &spawn.GetActiveSpawnInput{ChatID: testChatID})
	s.Require().NoError(err)
	s.NotEmpty(view.SessionID)
}

func (s *OrchestratorTestSuite) TestExactlyOneWinner() {
	s.loadCatalog(luffy())
	s.forceSpawn("msg_1")

	s.mockMessenger.EXPECT().DeleteMessage(gomock.Any(), testChatID, "msg_1").Return(nil)
	s.mockInventory.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&inventory.AppendOutput{Total: 1}, nil)
	s.mockClaims.EXPECT().IncrementClaim(gomock.Any(), gomock.Any()).Return(&claimstats.IncrementClaimOutput{}, nil)

	const claimers = 20
	outcomes := make([]spawn.ClaimOutcome, claimers)
	var wg sync.WaitGroup
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			out, err := s.orchestrator.Claim(s.ctx, &spawn.ClaimInput{
				ChatID: testChatID,
				UserID: testUserID,
				Guess:  "luffy",
			})
			s.Require().NoError(err)
			outcomes[n] = out.Outcome
		}(i)
	}
	wg.Wait()

	won, resolved := 0, 0
	for _, outcome := range outcomes {
		switch outcome {
		case spawn.OutcomeWon:
			won++
		case spawn.OutcomeAlreadyResolved:
			resolved++
		}
	}
	s.Equal(1, won, "exactly one winner")
	s.Equal(claimers-1, resolved)
}

func (s *OrchestratorTestSuite) TestClaimAfterDespawn() {
	s.loadCatalog(luffy())
	s.forceSpawn("msg_1")

	s.mockMessenger.EXPECT().DeleteMessage(gomock.Any(), testChatID, "msg_1").Return(nil)
	s.mockMessenger.EXPECT().PostNotice(gomock.Any(), testChatID, gomock.Any()).Return(nil)

	s.Require().True(s.scheduler.Fire())

	claimOut, err := s.orchestrator.Claim(s.ctx, &spawn.ClaimInput{
		ChatID: testChatID,
		UserID: testUserID,
		Guess:  "luffy",
	})
	s.Require().NoError(err)
	s.Equal(spawn.OutcomeNoActiveSpawn, claimOut.Outcome)
	s.Nil(claimOut.Character)
}

func (s *OrchestratorTestSuite) TestClaimBeatsDespawnTimer() {
	s.loadCatalog(luffy())
	s.forceSpawn("msg_1")

	s.mockMessenger.EXPECT().DeleteMessage(gomock.Any(), testChatID, "msg_1").Return(nil)
	s.mockInventory.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&inventory.AppendOutput{Total: 1}, nil)
	s.mockClaims.EXPECT().IncrementClaim(gomock.Any(), gomock.Any()).Return(&claimstats.IncrementClaimOutput{}, nil)

	claimOut, err := s.orchestrator.Claim(s.ctx, &spawn.ClaimInput{
		ChatID: testChatID,
		UserID: testUserID,
		Guess:  "Monkey D. Luffy",
	})
	s.Require().NoError(err)
	s.Equal(spawn.OutcomeWon, claimOut.Outcome)

	// The stale despawn timer fires against a claimed session: no
	// deletion, no notice
	s.Require().True(s.scheduler.Fire())

	// And the chat is free for the next spawn
	s.forceSpawn("msg_2")
}

func (s *OrchestratorTestSuite) TestSideEffectFailureKeepsWin() {
	s.loadCatalog(luffy())
	s.forceSpawn("msg_1")

	s.mockMessenger.EXPECT().DeleteMessage(gomock.Any(), testChatID, "msg_1").Return(nil)
	s.mockInventory.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	claimOut, err := s.orchestrator.Claim(s.ctx, &spawn.ClaimInput{
		ChatID: testChatID,
		UserID: testUserID,
		Guess:  "luffy",
	})
	s.Require().NoError(err)
	s.Equal(spawn.OutcomeWon, claimOut.Outcome)
	s.Require().NotNil(claimOut.Character)
	s.Error(claimOut.SideEffectErr)

	// The win is not rolled back: later guesses see a resolved spawn
	claimOut, err = s.orchestrator.Claim(s.ctx, &spawn.ClaimInput{
		ChatID: testChatID,
		UserID: "user_2",
		Guess:  "luffy",
	})
	s.Require().NoError(err)
	s.Equal(spawn.OutcomeAlreadyResolved, claimOut.Outcome)
}

func (s *OrchestratorTestSuite) TestDisallowedPunctuationIsWrongGuess() {
	s.loadCatalog(luffy())
	s.forceSpawn("msg_1")

	claimOut, err := s.orchestrator.Claim(s.ctx, &spawn.ClaimInput{
		ChatID: testChatID,
		UserID: testUserID,
		Guess:  "luffy!",
	})
	s.Require().NoError(err)
	s.Equal(spawn.OutcomeWrongGuess, claimOut.Outcome)
	s.Nil(claimOut.Character)
}

func (s *OrchestratorTestSuite) TestNoCharacterAvailable() {
	s.loadCatalog()

	output, err := s.orchestrator.ForceSpawn(s.ctx, &spawn.ForceSpawnInput{ChatID: testChatID})
	s.Require().NoError(err)
	s.False(output.Spawned)
	s.Equal(0, s.scheduler.Pending())

	// The in-flight marker was released; the next attempt runs selection
	// again instead of being declined
	output, err = s.orchestrator.ForceSpawn(s.ctx, &spawn.ForceSpawnInput{ChatID: testChatID})
	s.Require().NoError(err)
	s.False(output.Spawned)
}

func (s *OrchestratorTestSuite) TestAnnouncementFailureLeavesNoSession() {
	s.loadCatalog(luffy())

	s.mockMessenger.EXPECT().
		PostSpawnAnnouncement(gomock.Any(), testChatID, gomock.Any()).
		Return("", errors.Unavailable("gateway down"))

	output, err := s.orchestrator.ForceSpawn(s.ctx, &spawn.ForceSpawnInput{ChatID: testChatID})
	s.Require().NoError(err)
	s.False(output.Spawned)
	s.Equal(0, s.scheduler.Pending())

	_, err = s.orchestrator.GetActiveSpawn(s.ctx, &spawn.GetActiveSpawnInput{ChatID: testChatID})
	s.True(errors.IsNotFound(err))

	// The chat recovers on the next attempt
	s.forceSpawn("msg_1")
}

func (s *OrchestratorTestSuite) TestChangeThresholdBounds() {
	_, err := s.orchestrator.ChangeThreshold(s.ctx, &spawn.ChangeThresholdInput{
		ChatID:    testChatID,
		Threshold: 1,
	})
	s.Error(err)

	_, err = s.orchestrator.ChangeThreshold(s.ctx, &spawn.ChangeThresholdInput{
		ChatID:    testChatID,
		Threshold: 1000,
	})
	s.Error(err)

	output, err := s.orchestrator.ChangeThreshold(s.ctx, &spawn.ChangeThresholdInput{
		ChatID:    testChatID,
		Threshold: 50,
	})
	s.Require().NoError(err)
	s.Equal(50, output.Threshold)
}

func (s *OrchestratorTestSuite) TestInputValidation() {
	_, err := s.orchestrator.RecordActivity(s.ctx, nil)
	s.Error(err)

	_, err = s.orchestrator.RecordActivity(s.ctx, &spawn.RecordActivityInput{})
	s.Error(err)

	_, err = s.orchestrator.Claim(s.ctx, &spawn.ClaimInput{ChatID: testChatID})
	s.Error(err)

	_, err = s.orchestrator.ForceSpawn(s.ctx, &spawn.ForceSpawnInput{})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestRefreshCatalog() {
	s.loadCatalog(luffy())

	s.mockChars.EXPECT().
		ListEligible(gomock.Any(), characters.ListEligibleInput{}).
		Return(&characters.ListEligibleOutput{Characters: []*catalog.Character{luffy(), {
			ID:   "char_rem",
			Name: "Rem",
			Tier: catalog.TierRare,
		}}}, nil)

	output, err := s.orchestrator.RefreshCatalog(s.ctx, &spawn.RefreshCatalogInput{})
	s.Require().NoError(err)
	s.Equal(2, output.Characters)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
