package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/events"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/rbac"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

type InvitationService struct {
	invitationRepo *repositories.InvitationRepo
	campaignRepo   *repositories.CampaignRepo
	userRepo       *repositories.UserRepo
	metricsRepo    *repositories.MetricsRepo
	auditRepo      *repositories.AuditRepo
	notifier       *NotifierClient
	publisher      events.Publisher
	cfg            *config.Config
	log            *zap.Logger
}

func NewInvitationService(
	invitationRepo *repositories.InvitationRepo,
	campaignRepo *repositories.CampaignRepo,
	userRepo *repositories.UserRepo,
	metricsRepo *repositories.MetricsRepo,
	auditRepo *repositories.AuditRepo,
	notifier *NotifierClient,
	publisher events.Publisher,
	cfg *config.Config,
	log *zap.Logger,
) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		campaignRepo:   campaignRepo,
		userRepo:       userRepo,
		metricsRepo:    metricsRepo,
		auditRepo:      auditRepo,
		notifier:       notifier,
		publisher:      publisher,
		cfg:            cfg,
		log:            log,
	}
}

// Invite creates an invitation, freezing the estimated price from the
// influencer's latest metrics at this moment. Re-inviting the same pair is a
// conflict regardless of how the first invitation ended.
func (s *InvitationService) Invite(ctx context.Context, actorID uuid.UUID, actorRole string, campaignID, influencerID uuid.UUID) (*models.Invitation, error) {
	c, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanManageCampaign(actorID, actorRole, c) {
		return nil, apperr.Forbidden("not allowed to invite for this campaign")
	}

	influencer, err := s.userRepo.GetByID(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	if influencer.Role != models.RoleInfluencer {
		return nil, apperr.InvalidInput("user %s is not an influencer", influencerID)
	}

	var price float64
	snapshot, err := s.metricsRepo.GetLatest(ctx, influencerID)
	if err == nil {
		price = s.cfg.Estimator().Estimate(snapshot.Followers, snapshot.EngagementRate)
	} else if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, err
	}

	inv := &models.Invitation{
		CampaignID:       campaignID,
		InfluencerUserID: influencerID,
		Status:           models.InvitationStatusPending,
		EstimatedPrice:   price,
	}
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      "invitation_created",
		EntityType:  "invitation",
		EntityID:    &inv.ID,
		Meta: map[string]any{
			"campaign_id":        campaignID.String(),
			"influencer_user_id": influencerID.String(),
			"estimated_price":    price,
		},
	})

	_ = s.publisher.Publish(ctx, events.StreamWorkflow, events.Event{
		Type: events.EventInvitationCreated,
		Payload: map[string]any{
			"invitation_id":      inv.ID.String(),
			"campaign_id":        campaignID.String(),
			"influencer_user_id": influencerID.String(),
		},
	})

	s.notifier.Notify(influencerID,
		fmt.Sprintf("You have been invited to campaign %q", c.Title))

	return inv, nil
}

// Respond records the influencer's accept or reject decision. The underlying
// write is a compare-and-set on status pending, so a second response loses
// with a conflict no matter how close the race.
func (s *InvitationService) Respond(ctx context.Context, actorID uuid.UUID, actorRole string, campaignID uuid.UUID, decision string) (*models.Invitation, error) {
	inv, err := s.invitationRepo.GetByPair(ctx, campaignID, actorID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanRespondInvitation(actorID, actorRole, inv) {
		return nil, apperr.Forbidden("not your invitation")
	}
	if !models.IsValidInvitationDecision(decision) {
		return nil, apperr.InvalidInput("decision must be accepted or rejected")
	}

	ok, err := s.invitationRepo.Respond(ctx, campaignID, actorID, decision)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Conflict("invitation already responded to")
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      fmt.Sprintf("invitation_%s", decision),
		EntityType:  "invitation",
		EntityID:    &inv.ID,
		Meta:        map[string]any{"campaign_id": campaignID.String(), "decision": decision},
	})

	_ = s.publisher.Publish(ctx, events.StreamWorkflow, events.Event{
		Type: events.EventInvitationResponded,
		Payload: map[string]any{
			"invitation_id":      inv.ID.String(),
			"campaign_id":        campaignID.String(),
			"influencer_user_id": actorID.String(),
			"decision":           decision,
		},
	})

	if c, cerr := s.campaignRepo.GetByID(ctx, campaignID); cerr == nil {
		s.notifier.Notify(c.BrandUserID,
			fmt.Sprintf("Invitation for campaign %q was %s", c.Title, decision))
	}

	return s.invitationRepo.GetByPair(ctx, campaignID, actorID)
}

func (s *InvitationService) ListByCampaign(ctx context.Context, actorID uuid.UUID, actorRole string, campaignID uuid.UUID) ([]models.Invitation, error) {
	c, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanManageCampaign(actorID, actorRole, c) {
		return nil, apperr.Forbidden("not allowed to view this campaign's invitations")
	}
	return s.invitationRepo.ListByCampaign(ctx, campaignID)
}

func (s *InvitationService) ListMine(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]models.InvitationWithCampaign, error) {
	return s.invitationRepo.ListByInfluencer(ctx, actorID, limit, offset)
}
