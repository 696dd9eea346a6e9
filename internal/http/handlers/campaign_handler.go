package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"github.com/influencer-marketplace/backend/internal/services"
)

type CampaignHandler struct {
	campaignService   *services.CampaignService
	matchingService   *services.MatchingService
	invitationService *services.InvitationService
	log               *zap.Logger
}

func NewCampaignHandler(
	campaignService *services.CampaignService,
	matchingService *services.MatchingService,
	invitationService *services.InvitationService,
	log *zap.Logger,
) *CampaignHandler {
	return &CampaignHandler{
		campaignService:   campaignService,
		matchingService:   matchingService,
		invitationService: invitationService,
		log:               log,
	}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	campaign := &models.Campaign{
		BrandUserID:       middleware.GetUserID(c),
		Title:             req.Title,
		Description:       req.Description,
		MinFollowers:      req.MinFollowers,
		MaxFollowers:      req.MaxFollowers,
		MinEngagementRate: req.MinEngagementRate,
		Categories:        req.Categories,
		MinBudget:         req.MinBudget,
		MaxBudget:         req.MaxBudget,
	}

	created, err := h.campaignService.Create(c.Context(), campaign)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: created})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	campaign, err := h.campaignService.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	filter := repositories.CampaignFilter{}

	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}

	// Brands see their own campaigns; influencers browse active ones.
	if middleware.GetRole(c) == models.RoleBrand {
		id := middleware.GetUserID(c)
		filter.BrandUserID = &id
	} else if filter.Status == nil {
		active := models.CampaignStatusActive
		filter.Status = &active
	}

	campaigns, err := h.campaignService.List(c.Context(), filter)
	if err != nil {
		h.log.Error("list campaigns failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	campaign := &models.Campaign{
		ID:                id,
		Title:             req.Title,
		Description:       req.Description,
		MinFollowers:      req.MinFollowers,
		MaxFollowers:      req.MaxFollowers,
		MinEngagementRate: req.MinEngagementRate,
		Categories:        req.Categories,
		MinBudget:         req.MinBudget,
		MaxBudget:         req.MaxBudget,
	}

	updated, err := h.campaignService.Update(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), campaign)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *CampaignHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.UpdateCampaignStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "status is required"})
	}

	campaign, err := h.campaignService.UpdateStatus(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) GetRecommendations(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	candidates, err := h.matchingService.Recommend(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), id, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: candidates})
}

func (h *CampaignHandler) Invite(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.InviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	influencerID, err := uuid.Parse(req.InfluencerUserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer_user_id"})
	}

	inv, err := h.invitationService.Invite(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), campaignID, influencerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: inv})
}

func (h *CampaignHandler) ListInvitations(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	invs, err := h.invitationService.ListByCampaign(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), campaignID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: invs})
}

func (h *CampaignHandler) RespondInvitation(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.RespondInvitationRequest
	if err := c.BodyParser(&req); err != nil || req.Decision == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "decision is required"})
	}

	inv, err := h.invitationService.Respond(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), campaignID, req.Decision)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: inv})
}

func (h *CampaignHandler) MyInvitations(c *fiber.Ctx) error {
	limit, offset := 0, 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	invs, err := h.invitationService.ListMine(c.Context(), middleware.GetUserID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: invs})
}

func (h *CampaignHandler) GetCampaignEvents(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	events, err := h.campaignService.GetEvents(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: events})
}
