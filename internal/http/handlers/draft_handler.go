package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"github.com/influencer-marketplace/backend/internal/services"
)

type DraftHandler struct {
	draftService  *services.DraftService
	reviewService *services.ReviewService
	log           *zap.Logger
}

func NewDraftHandler(draftService *services.DraftService, reviewService *services.ReviewService, log *zap.Logger) *DraftHandler {
	return &DraftHandler{draftService: draftService, reviewService: reviewService, log: log}
}

func (h *DraftHandler) SubmitDraft(c *fiber.Ctx) error {
	var req dto.SubmitDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign_id"})
	}

	input := services.SubmitDraftInput{
		CampaignID:  campaignID,
		Title:       req.Title,
		ContentType: req.ContentType,
		Caption:     req.Caption,
		MediaURLs:   req.MediaURLs,
	}

	draft, err := h.draftService.Submit(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: draft})
}

func (h *DraftHandler) GetDraft(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid draft id"})
	}

	draft, err := h.draftService.Get(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: draft})
}

func (h *DraftHandler) ListDrafts(c *fiber.Ctx) error {
	filter := repositories.DraftFilter{}

	if v := c.Query("campaign_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign_id"})
		}
		filter.CampaignID = id
	}
	if v := c.Query("status"); v != "" {
		filter.Status = v
	}
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

	drafts, err := h.draftService.List(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: drafts})
}

func (h *DraftHandler) ResubmitDraft(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid draft id"})
	}

	var req dto.ResubmitDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	input := services.SubmitDraftInput{
		Title:       req.Title,
		ContentType: req.ContentType,
		Caption:     req.Caption,
		MediaURLs:   req.MediaURLs,
	}

	draft, err := h.draftService.Resubmit(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: draft})
}

func (h *DraftHandler) ReviewDraft(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid draft id"})
	}

	var req dto.ReviewDraftRequest
	if err := c.BodyParser(&req); err != nil || req.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "action is required"})
	}

	draft, err := h.reviewService.Review(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), id, req.Action, req.Feedback)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: draft})
}

func (h *DraftHandler) MarkPosted(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid draft id"})
	}

	draft, err := h.draftService.MarkPosted(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: draft})
}

func (h *DraftHandler) ListFeedback(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid draft id"})
	}

	entries, err := h.draftService.ListFeedback(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}

func (h *DraftHandler) GetDraftEvents(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid draft id"})
	}

	events, err := h.draftService.GetEvents(c.Context(), middleware.GetUserID(c), middleware.GetRole(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: events})
}
