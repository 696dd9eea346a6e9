package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/db"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/profileparser"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

// The worker periodically refreshes metrics snapshots for recently active
// influencers from their public profiles. Matching always reads the latest
// stored snapshot, so this is the only place fresh data enters the system.

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repositories.NewUserRepo(pool)
	metricsRepo := repositories.NewMetricsRepo(pool)
	parser := profileparser.NewParser(cfg.ProfileBaseURL, cfg.ProfileFetchTimeoutMS, cfg.ProfileFetchMaxRetries, log)

	log.Info("worker started", zap.Duration("refresh_interval", cfg.MetricsRefreshInterval))

	refreshTicker := time.NewTicker(cfg.MetricsRefreshInterval)
	defer refreshTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Refresh once at startup so a fresh deployment has data before the
	// first tick.
	runMetricsRefresh(ctx, userRepo, metricsRepo, parser, cfg, log)

	for {
		select {
		case <-refreshTicker.C:
			runMetricsRefresh(ctx, userRepo, metricsRepo, parser, cfg, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

func runMetricsRefresh(
	ctx context.Context,
	userRepo *repositories.UserRepo,
	metricsRepo *repositories.MetricsRepo,
	parser *profileparser.Parser,
	cfg *config.Config,
	log *zap.Logger,
) {
	since := time.Now().Add(-cfg.MetricsActiveWindow)
	ids, err := userRepo.GetActiveInfluencerIDs(ctx, since)
	if err != nil {
		log.Error("failed to get active influencers", zap.Error(err))
		return
	}

	log.Info("refreshing metrics", zap.Int("influencers", len(ids)))

	for _, id := range ids {
		user, err := userRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}

		stats, err := parser.FetchAndParse(ctx, user.Handle)
		if err != nil {
			log.Warn("profile fetch failed",
				zap.String("handle", user.Handle),
				zap.Error(err),
			)
			continue
		}
		if stats.Followers <= 0 {
			log.Warn("profile returned no follower count", zap.String("handle", user.Handle))
			continue
		}

		snapshot := &models.MetricsSnapshot{
			InfluencerUserID: id,
			Followers:        stats.Followers,
			EngagementRate:   stats.EngagementRate,
			AvgLikes:         stats.AvgLikes,
			AvgComments:      stats.AvgComments,
			Source:           "profile_scrape",
		}
		if err := metricsRepo.InsertSnapshot(ctx, snapshot); err != nil {
			log.Error("failed to store snapshot",
				zap.String("handle", user.Handle),
				zap.Error(err),
			)
			continue
		}

		time.Sleep(1 * time.Second) // rate limiting
	}
}
