package testutils

import (
	"fmt"

	"github.com/collectabot/collect-api/internal/entities/catalog"
)

// TestChatID is the default chat for test fixtures
const TestChatID = "chat-test-001"

// TestUserID is the default user for test fixtures
const TestUserID = "user-test-001"

// CreateTestCharacter creates a catalog record with sensible defaults
func CreateTestCharacter(id string) *catalog.Character {
	return &catalog.Character{
		ID:       id,
		Name:     "Test Character",
		Series:   "Test Series",
		Tier:     catalog.TierCommon,
		MediaRef: fmt.Sprintf("media/%s.png", id),
	}
}

// CreateTestCharacterWithTier creates a catalog record in the given tier
func CreateTestCharacterWithTier(id string, tier catalog.Tier) *catalog.Character {
	c := CreateTestCharacter(id)
	c.Tier = tier
	c.IsVideo = tier.IsVideo()
	if c.IsVideo {
		c.MediaRef = fmt.Sprintf("media/%s.mp4", id)
	}
	return c
}

// CreateTestCatalog creates n common-tier characters with distinct IDs
// and names
func CreateTestCatalog(n int) []*catalog.Character {
	out := make([]*catalog.Character, 0, n)
	for i := 0; i < n; i++ {
		c := CreateTestCharacter(fmt.Sprintf("char-%03d", i))
		c.Name = fmt.Sprintf("Character %03d", i)
		out = append(out, c)
	}
	return out
}
