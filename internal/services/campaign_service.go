package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/events"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/rbac"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	auditRepo    *repositories.AuditRepo
	publisher    events.Publisher
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		auditRepo:    auditRepo,
		publisher:    publisher,
		log:          log,
	}
}

func (s *CampaignService) Create(ctx context.Context, c *models.Campaign) (*models.Campaign, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.Status = models.CampaignStatusDraft

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &c.BrandUserID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
		Meta:        map[string]any{"title": c.Title},
	})

	return c, nil
}

func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

func (s *CampaignService) List(ctx context.Context, f repositories.CampaignFilter) ([]models.Campaign, error) {
	return s.campaignRepo.List(ctx, f)
}

// Update replaces the campaign's targeting and budget fields. Only the owning
// brand or an admin may update, and only before the campaign completes.
// Frozen invitation prices are unaffected by later targeting changes.
func (s *CampaignService) Update(ctx context.Context, actorID uuid.UUID, actorRole string, c *models.Campaign) (*models.Campaign, error) {
	existing, err := s.campaignRepo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanManageCampaign(actorID, actorRole, existing) {
		return nil, apperr.Forbidden("not allowed to manage this campaign")
	}
	if existing.Status == models.CampaignStatusCompleted {
		return nil, apperr.InvalidState("completed campaigns cannot be edited")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.campaignRepo.GetByID(ctx, c.ID)
}

// UpdateStatus moves the campaign along draft -> active -> completed. The
// write is a compare-and-set on the current status, so concurrent updates
// resolve to a single winner.
func (s *CampaignService) UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, newStatus string) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rbac.CanManageCampaign(actorID, actorRole, c) {
		return nil, apperr.Forbidden("not allowed to manage this campaign")
	}
	if !models.IsValidCampaignTransition(c.Status, newStatus) {
		return nil, apperr.InvalidState("cannot move campaign from %s to %s", c.Status, newStatus)
	}

	oldStatus := c.Status
	ok, err := s.campaignRepo.UpdateStatusFrom(ctx, id, oldStatus, newStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Conflict("campaign status changed concurrently")
	}
	c.Status = newStatus

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      fmt.Sprintf("campaign_status_%s_to_%s", oldStatus, newStatus),
		EntityType:  "campaign",
		EntityID:    &c.ID,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": newStatus},
	})

	_ = s.publisher.Publish(ctx, events.StreamWorkflow, events.Event{
		Type: events.EventCampaignStatusChanged,
		Payload: map[string]any{
			"campaign_id": c.ID.String(),
			"old_status":  oldStatus,
			"new_status":  newStatus,
		},
	})

	return c, nil
}

func (s *CampaignService) GetEvents(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) ([]models.AuditLog, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rbac.CanManageCampaign(actorID, actorRole, c) {
		return nil, apperr.Forbidden("not allowed to view this campaign's audit trail")
	}
	return s.auditRepo.GetByEntity(ctx, "campaign", id, 100, 0)
}
