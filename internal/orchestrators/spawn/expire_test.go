package spawn

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	messagingmock "github.com/collectabot/collect-api/internal/clients/messaging/mock"
	"github.com/collectabot/collect-api/internal/engine/catalogcache"
	"github.com/collectabot/collect-api/internal/engine/session"
	"github.com/collectabot/collect-api/internal/entities/catalog"
	"github.com/collectabot/collect-api/internal/pkg/timer"
	charactersmock "github.com/collectabot/collect-api/internal/repositories/characters/mock"
	claimstatsmock "github.com/collectabot/collect-api/internal/repositories/claimstats/mock"
	inventorymock "github.com/collectabot/collect-api/internal/repositories/inventory/mock"
	raritymock "github.com/collectabot/collect-api/internal/repositories/rarity/mock"
)

// Duplicate despawn firings for the same session must produce a single
// transition: one announcement deletion and one notice.
func TestExpireDuplicateFiringsSingleNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessenger := messagingmock.NewMockClient(ctrl)

	cache, err := catalogcache.New(&catalogcache.Config{
		Repository: charactersmock.NewMockRepository(ctrl),
	})
	require.NoError(t, err)

	o, err := New(&Config{
		Catalog:    cache,
		Rarity:     raritymock.NewMockRepository(ctrl),
		Inventory:  inventorymock.NewMockRepository(ctrl),
		ClaimStats: claimstatsmock.NewMockRepository(ctrl),
		Messenger:  mockMessenger,
		Scheduler:  timer.NewManual(),
	})
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	o.registry.WithChat("chat_1", func(slot *session.Slot) {
		slot.Session = &session.Session{
			ID:           "sess_1",
			ChatID:       "chat_1",
			Character:    &catalog.Character{ID: "char_rem", Name: "Rem", Tier: catalog.TierRare},
			PlacementRef: "msg_1",
			CreatedAt:    now,
			Deadline:     now.Add(10 * time.Minute),
			State:        session.StateActive,
		}
	})

	mockMessenger.EXPECT().DeleteMessage(gomock.Any(), "chat_1", "msg_1").Return(nil).Times(1)
	mockMessenger.EXPECT().PostNotice(gomock.Any(), "chat_1", gomock.Any()).Return(nil).Times(1)

	ctx := context.Background()
	o.expire(ctx, "chat_1", "sess_1")
	o.expire(ctx, "chat_1", "sess_1")

	require.Nil(t, o.registry.ActiveSession("chat_1"))
}
