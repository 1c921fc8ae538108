package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/collectabot/collect-api/internal/entities/catalog"
)

// logClient is a dry-run gateway used when no gateway URL is
// configured; it logs what would have been sent.
type logClient struct {
	seq atomic.Uint64
}

// NewLog creates a gateway client that only logs
func NewLog() Client {
	return &logClient{}
}

// Ensure logClient implements Client
var _ Client = (*logClient)(nil)

func (c *logClient) PostSpawnAnnouncement(ctx context.Context, chatID string, character *catalog.Character) (string, error) {
	ref := fmt.Sprintf("dry_%d", c.seq.Add(1))
	slog.InfoContext(ctx, "dry-run spawn announcement",
		"chat_id", chatID,
		"character_id", character.ID,
		"message_ref", ref,
	)
	return ref, nil
}

func (c *logClient) DeleteMessage(ctx context.Context, chatID, messageRef string) error {
	slog.InfoContext(ctx, "dry-run message delete",
		"chat_id", chatID,
		"message_ref", messageRef,
	)
	return nil
}

func (c *logClient) PostNotice(ctx context.Context, chatID, text string) error {
	slog.InfoContext(ctx, "dry-run notice",
		"chat_id", chatID,
		"text", text,
	)
	return nil
}
