// Package messaging provides the client for the chat gateway that
// places spawn announcements and notices
package messaging

//go:generate mockgen -destination=mock/mock_client.go -package=messagingmock github.com/collectabot/collect-api/internal/clients/messaging Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/collectabot/collect-api/internal/entities/catalog"
	"github.com/collectabot/collect-api/internal/errors"
)

// Client defines the interface to the chat gateway. Deletes are
// best-effort; a message already gone is not an error.
type Client interface {
	// PostSpawnAnnouncement places the spawn message and returns the
	// reference needed to remove it later
	PostSpawnAnnouncement(ctx context.Context, chatID string, character *catalog.Character) (string, error)

	// DeleteMessage removes a previously placed message
	DeleteMessage(ctx context.Context, chatID, messageRef string) error

	// PostNotice sends a plain text message to the chat
	PostNotice(ctx context.Context, chatID, text string) error
}

const defaultTimeout = 10 * time.Second

// HTTPConfig holds the configuration for the HTTP gateway client
type HTTPConfig struct {
	// BaseURL of the gateway, e.g. http://gateway:8081
	BaseURL string

	// Timeout per request; defaults to 10s
	Timeout time.Duration

	// HTTPClient overrides the underlying client, mainly for tests
	HTTPClient *http.Client
}

// Validate ensures all required configuration is provided
func (c *HTTPConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BaseURL == "" {
		vb.RequiredField("BaseURL")
	}

	return vb.Build()
}

type httpGateway struct {
	baseURL string
	http    *http.Client
}

// NewHTTP creates a gateway client speaking JSON over HTTP
func NewHTTP(cfg *HTTPConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &httpGateway{
		baseURL: cfg.BaseURL,
		http:    hc,
	}, nil
}

// Ensure httpGateway implements Client
var _ Client = (*httpGateway)(nil)

type postMessageRequest struct {
	ChatID   string `json:"chat_id"`
	Text     string `json:"text,omitempty"`
	MediaRef string `json:"media_ref,omitempty"`
	IsVideo  bool   `json:"is_video,omitempty"`
}

type postMessageResponse struct {
	MessageRef string `json:"message_ref"`
}

type deleteMessageRequest struct {
	ChatID     string `json:"chat_id"`
	MessageRef string `json:"message_ref"`
}

func (g *httpGateway) PostSpawnAnnouncement(ctx context.Context, chatID string, character *catalog.Character) (string, error) {
	if character == nil {
		return "", errors.InvalidArgument("character cannot be nil")
	}

	resp, err := g.post(ctx, "/messages", postMessageRequest{
		ChatID:   chatID,
		MediaRef: character.MediaRef,
		IsVideo:  character.IsVideo,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to post spawn announcement")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Unavailablef("gateway returned status %d", resp.StatusCode)
	}

	var body postMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "failed to decode gateway response")
	}
	if body.MessageRef == "" {
		return "", errors.Internal("gateway returned empty message ref")
	}

	return body.MessageRef, nil
}

func (g *httpGateway) DeleteMessage(ctx context.Context, chatID, messageRef string) error {
	resp, err := g.post(ctx, "/messages/delete", deleteMessageRequest{
		ChatID:     chatID,
		MessageRef: messageRef,
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete message")
	}
	defer func() { _ = resp.Body.Close() }()

	// The message being gone already is success
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return errors.Unavailablef("gateway returned status %d", resp.StatusCode)
	}

	return nil
}

func (g *httpGateway) PostNotice(ctx context.Context, chatID, text string) error {
	resp, err := g.post(ctx, "/messages", postMessageRequest{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return errors.Wrap(err, "failed to post notice")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Unavailablef("gateway returned status %d", resp.StatusCode)
	}

	return nil
}

func (g *httpGateway) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return g.http.Do(req)
}
