package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/http/handlers"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/models"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	influencerHandler *handlers.InfluencerHandler,
	campaignHandler *handlers.CampaignHandler,
	draftHandler *handlers.DraftHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Rate-limited public endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, 100, time.Minute))

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/categories", metaHandler.GetCategories)
	api.Get("/meta/content-types", metaHandler.GetContentTypes)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// User
	protected.Get("/me", userHandler.GetMe)
	protected.Post("/me/ping", userHandler.Ping)

	// Influencer discovery
	protected.Get("/influencers", influencerHandler.ListInfluencers)
	protected.Get("/influencers/:id/metrics", influencerHandler.GetMetrics)

	// Campaigns
	protected.Post("/campaigns", middleware.RequireRole(models.RoleBrand), campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", middleware.RequireRole(models.RoleBrand), campaignHandler.UpdateCampaign)
	protected.Post("/campaigns/:id/status", middleware.RequireRole(models.RoleBrand), campaignHandler.UpdateStatus)
	protected.Get("/campaigns/:id/recommendations", middleware.RequireRole(models.RoleBrand), campaignHandler.GetRecommendations)
	protected.Get("/campaigns/:id/events", middleware.RequireRole(models.RoleBrand), campaignHandler.GetCampaignEvents)

	// Invitations
	protected.Post("/campaigns/:id/invitations", middleware.RequireRole(models.RoleBrand), campaignHandler.Invite)
	protected.Get("/campaigns/:id/invitations", middleware.RequireRole(models.RoleBrand), campaignHandler.ListInvitations)
	protected.Post("/campaigns/:id/invitations/respond", middleware.RequireRole(models.RoleInfluencer), campaignHandler.RespondInvitation)
	protected.Get("/invitations", middleware.RequireRole(models.RoleInfluencer), campaignHandler.MyInvitations)

	// Drafts
	protected.Post("/drafts", middleware.RequireRole(models.RoleInfluencer), draftHandler.SubmitDraft)
	protected.Get("/drafts", draftHandler.ListDrafts)
	protected.Get("/drafts/:id", draftHandler.GetDraft)
	protected.Put("/drafts/:id/content", middleware.RequireRole(models.RoleInfluencer), draftHandler.ResubmitDraft)
	protected.Post("/drafts/:id/review", middleware.RequireRole(models.RoleBrand), draftHandler.ReviewDraft)
	protected.Post("/drafts/:id/posted", middleware.RequireRole(models.RoleInfluencer), draftHandler.MarkPosted)
	protected.Get("/drafts/:id/feedback", draftHandler.ListFeedback)
	protected.Get("/drafts/:id/events", draftHandler.GetDraftEvents)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
