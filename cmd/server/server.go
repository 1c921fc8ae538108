package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/collectabot/collect-api/internal/clients/messaging"
	"github.com/collectabot/collect-api/internal/config"
	"github.com/collectabot/collect-api/internal/engine/catalogcache"
	apiv1 "github.com/collectabot/collect-api/internal/handlers/api/v1"
	"github.com/collectabot/collect-api/internal/orchestrators/spawn"
	"github.com/collectabot/collect-api/internal/redis"
	"github.com/collectabot/collect-api/internal/repositories/characters"
	"github.com/collectabot/collect-api/internal/repositories/claimstats"
	"github.com/collectabot/collect-api/internal/repositories/inventory"
	"github.com/collectabot/collect-api/internal/repositories/rarity"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, _ []string) error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddress, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	characterRepo, err := characters.NewRedis(&characters.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}
	inventoryRepo, err := inventory.NewRedis(&inventory.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}
	claimStatsRepo, err := claimstats.NewRedis(&claimstats.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}
	rarityRepo, err := rarity.NewRedis(&rarity.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}

	cache, err := catalogcache.New(&catalogcache.Config{Repository: characterRepo})
	if err != nil {
		return err
	}
	// A failed startup refresh is not fatal; selection reports nothing
	// available until the first successful reload
	if err := cache.Refresh(ctx); err != nil {
		slog.Warn("startup catalog refresh failed", "error", err)
	}
	go refreshLoop(ctx, cache, cfg.CatalogRefreshInterval)

	messenger := newMessenger(cfg)

	service, err := spawn.New(&spawn.Config{
		Catalog:          cache,
		Rarity:           rarityRepo,
		Inventory:        inventoryRepo,
		ClaimStats:       claimStatsRepo,
		Messenger:        messenger,
		DespawnWindow:    cfg.DespawnWindow,
		VideoVenueChatID: cfg.VideoVenueChatID,
	})
	if err != nil {
		return err
	}

	handler, err := apiv1.NewHandler(&apiv1.Config{
		Service:    service,
		Inventory:  inventoryRepo,
		ClaimStats: claimStatsRepo,
	})
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "address", cfg.HTTPAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			return err
		}
		slog.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}

func newMessenger(cfg *config.Config) messaging.Client {
	if cfg.GatewayURL == "" {
		slog.Info("no gateway configured, announcements go to the log")
		return messaging.NewLog()
	}
	client, err := messaging.NewHTTP(&messaging.HTTPConfig{BaseURL: cfg.GatewayURL})
	if err != nil {
		// Only reachable with an empty base URL, handled above
		slog.Warn("gateway client setup failed, falling back to log", "error", err)
		return messaging.NewLog()
	}
	return client
}

func refreshLoop(ctx context.Context, cache *catalogcache.Cache, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := cache.Refresh(ctx); err != nil {
				slog.Warn("catalog refresh failed, keeping previous snapshot", "error", err)
			}
		}
	}
}
