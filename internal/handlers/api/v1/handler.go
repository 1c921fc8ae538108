// Package apiv1 exposes the spawn engine over HTTP. Handlers are
// transport-thin: bind, call, map errors.
package apiv1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/collectabot/collect-api/internal/errors"
	"github.com/collectabot/collect-api/internal/orchestrators/spawn"
	"github.com/collectabot/collect-api/internal/repositories/claimstats"
	"github.com/collectabot/collect-api/internal/repositories/inventory"
)

// Config holds the dependencies for the API handler
type Config struct {
	Service    spawn.Service
	Inventory  inventory.Repository
	ClaimStats claimstats.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.ClaimStats == nil {
		vb.RequiredField("ClaimStats")
	}

	return vb.Build()
}

// Handler serves the v1 API
type Handler struct {
	service    spawn.Service
	inventory  inventory.Repository
	claimStats claimstats.Repository
}

// NewHandler creates the v1 API handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		service:    cfg.Service,
		inventory:  cfg.Inventory,
		claimStats: cfg.ClaimStats,
	}, nil
}

// RegisterRoutes attaches every route to the engine
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")
	{
		v1.POST("/chats/:chat_id/events", h.recordActivity)
		v1.POST("/chats/:chat_id/guesses", h.claim)
		v1.GET("/chats/:chat_id/spawn", h.getActiveSpawn)
		v1.POST("/chats/:chat_id/spawn", h.forceSpawn)
		v1.PUT("/chats/:chat_id/threshold", h.changeThreshold)
		v1.GET("/chats/:chat_id/leaderboard", h.leaderboard)
		v1.GET("/users/:user_id/inventory", h.getInventory)
		v1.POST("/catalog/refresh", h.refreshCatalog)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func respondError(c *gin.Context, err error) {
	status, body := errors.ToHTTP(err)
	c.JSON(status, body)
}

// RecordActivityResponse reports whether the event triggered a spawn
type RecordActivityResponse struct {
	SpawnTriggered bool `json:"spawn_triggered"`
}

func (h *Handler) recordActivity(c *gin.Context) {
	output, err := h.service.RecordActivity(c.Request.Context(), &spawn.RecordActivityInput{
		ChatID: c.Param("chat_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecordActivityResponse{
		SpawnTriggered: output.SpawnTriggered,
	})
}

// ClaimRequest is one user's guess at the live spawn
type ClaimRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Guess  string `json:"guess" binding:"required"`
}

// ClaimedCharacter is the granted character as returned to the winner
type ClaimedCharacter struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Series string `json:"series,omitempty"`
	Tier   string `json:"tier"`
	Label  string `json:"tier_label"`
}

// ClaimResponse reports the outcome of a guess
type ClaimResponse struct {
	Outcome   spawn.ClaimOutcome `json:"outcome"`
	Character *ClaimedCharacter  `json:"character,omitempty"`

	// SideEffectError is set when the win stands but persistence of a
	// side effect failed
	SideEffectError string `json:"side_effect_error,omitempty"`
}

func (h *Handler) claim(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("user_id and guess are required"))
		return
	}

	output, err := h.service.Claim(c.Request.Context(), &spawn.ClaimInput{
		ChatID: c.Param("chat_id"),
		UserID: req.UserID,
		Guess:  req.Guess,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := ClaimResponse{Outcome: output.Outcome}
	if output.Character != nil {
		resp.Character = &ClaimedCharacter{
			ID:     output.Character.ID,
			Name:   output.Character.Name,
			Series: output.Character.Series,
			Tier:   output.Character.Tier.String(),
			Label:  output.Character.Tier.Label(),
		}
	}
	if output.SideEffectErr != nil {
		resp.SideEffectError = output.SideEffectErr.Error()
	}

	c.JSON(http.StatusOK, resp)
}

// ActiveSpawnResponse describes a live spawn without its name
type ActiveSpawnResponse struct {
	SessionID string    `json:"session_id"`
	ChatID    string    `json:"chat_id"`
	Tier      string    `json:"tier"`
	TierLabel string    `json:"tier_label"`
	MediaRef  string    `json:"media_ref,omitempty"`
	IsVideo   bool      `json:"is_video"`
	CreatedAt time.Time `json:"created_at"`
	Deadline  time.Time `json:"deadline"`
}

func (h *Handler) getActiveSpawn(c *gin.Context) {
	output, err := h.service.GetActiveSpawn(c.Request.Context(), &spawn.GetActiveSpawnInput{
		ChatID: c.Param("chat_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ActiveSpawnResponse{
		SessionID: output.SessionID,
		ChatID:    output.ChatID,
		Tier:      output.Tier.String(),
		TierLabel: output.Tier.Label(),
		MediaRef:  output.MediaRef,
		IsVideo:   output.IsVideo,
		CreatedAt: output.CreatedAt,
		Deadline:  output.Deadline,
	})
}

// ForceSpawnResponse reports whether the admin spawn was placed
type ForceSpawnResponse struct {
	Spawned bool `json:"spawned"`
}

func (h *Handler) forceSpawn(c *gin.Context) {
	output, err := h.service.ForceSpawn(c.Request.Context(), &spawn.ForceSpawnInput{
		ChatID: c.Param("chat_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ForceSpawnResponse{Spawned: output.Spawned})
}

// ChangeThresholdRequest sets the chat's activity threshold
type ChangeThresholdRequest struct {
	Threshold int `json:"threshold" binding:"required"`
}

// ChangeThresholdResponse echoes the applied threshold
type ChangeThresholdResponse struct {
	Threshold int `json:"threshold"`
}

func (h *Handler) changeThreshold(c *gin.Context) {
	var req ChangeThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("threshold is required"))
		return
	}

	output, err := h.service.ChangeThreshold(c.Request.Context(), &spawn.ChangeThresholdInput{
		ChatID:    c.Param("chat_id"),
		Threshold: req.Threshold,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChangeThresholdResponse{Threshold: output.Threshold})
}

// LeaderboardResponse lists a chat's claim counts
type LeaderboardResponse struct {
	ByUser map[string]int64 `json:"by_user"`
	Total  int64            `json:"total"`
}

func (h *Handler) leaderboard(c *gin.Context) {
	output, err := h.claimStats.GroupTotals(c.Request.Context(), claimstats.GroupTotalsInput{
		ChatID: c.Param("chat_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LeaderboardResponse{
		ByUser: output.ByUser,
		Total:  output.Total,
	})
}

// InventoryEntry is one owned character and how many copies the user holds
type InventoryEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Series string `json:"series,omitempty"`
	Tier   string `json:"tier"`
	Count  int64  `json:"count"`
}

// InventoryResponse lists everything a user owns, in grant order
type InventoryResponse struct {
	Characters []InventoryEntry `json:"characters"`
}

func (h *Handler) getInventory(c *gin.Context) {
	output, err := h.inventory.Get(c.Request.Context(), inventory.GetInput{
		UserID: c.Param("user_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	entries := make([]InventoryEntry, 0, len(output.Characters))
	seen := make(map[string]bool)
	for _, ch := range output.Characters {
		if seen[ch.ID] {
			continue
		}
		seen[ch.ID] = true
		entries = append(entries, InventoryEntry{
			ID:     ch.ID,
			Name:   ch.Name,
			Series: ch.Series,
			Tier:   ch.Tier.String(),
			Count:  output.Counts[ch.ID],
		})
	}

	c.JSON(http.StatusOK, InventoryResponse{Characters: entries})
}

// RefreshCatalogResponse reports the refreshed snapshot size
type RefreshCatalogResponse struct {
	Characters int `json:"characters"`
}

func (h *Handler) refreshCatalog(c *gin.Context) {
	output, err := h.service.RefreshCatalog(c.Request.Context(), &spawn.RefreshCatalogInput{})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RefreshCatalogResponse{Characters: output.Characters})
}
