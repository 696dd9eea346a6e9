package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

// InfluencerHandler exposes the influencer discovery surface: the candidate
// pool with latest metrics, and per-influencer metrics history.
type InfluencerHandler struct {
	metricsRepo *repositories.MetricsRepo
	log         *zap.Logger
}

func NewInfluencerHandler(metricsRepo *repositories.MetricsRepo, log *zap.Logger) *InfluencerHandler {
	return &InfluencerHandler{metricsRepo: metricsRepo, log: log}
}

func (h *InfluencerHandler) ListInfluencers(c *fiber.Ctx) error {
	pool, err := h.metricsRepo.CandidatePool(c.Context())
	if err != nil {
		h.log.Error("list influencers failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: pool})
}

func (h *InfluencerHandler) GetMetrics(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer id"})
	}

	snapshot, err := h.metricsRepo.GetLatest(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: snapshot})
}
