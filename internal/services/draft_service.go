package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/events"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/rbac"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

type DraftService struct {
	draftRepo    *repositories.DraftRepo
	campaignRepo *repositories.CampaignRepo
	auditRepo    *repositories.AuditRepo
	notifier     *NotifierClient
	publisher    events.Publisher
	log          *zap.Logger
}

func NewDraftService(
	draftRepo *repositories.DraftRepo,
	campaignRepo *repositories.CampaignRepo,
	auditRepo *repositories.AuditRepo,
	notifier *NotifierClient,
	publisher events.Publisher,
	log *zap.Logger,
) *DraftService {
	return &DraftService{
		draftRepo:    draftRepo,
		campaignRepo: campaignRepo,
		auditRepo:    auditRepo,
		notifier:     notifier,
		publisher:    publisher,
		log:          log,
	}
}

type SubmitDraftInput struct {
	CampaignID  uuid.UUID
	Title       string
	ContentType string
	Caption     string
	MediaURLs   []string
}

func validateDraftContent(title, contentType, caption string) error {
	if title == "" {
		return apperr.InvalidInput("draft title is required")
	}
	if !models.IsValidContentType(contentType) {
		return apperr.InvalidInput("content type must be one of: post, story, reel, carousel")
	}
	if caption == "" {
		return apperr.InvalidInput("draft caption is required")
	}
	return nil
}

// Submit creates a new pending draft. An accepted invitation for the campaign
// is the precondition: without one there is no collaboration to submit
// against, whatever the content looks like.
func (s *DraftService) Submit(ctx context.Context, actorID uuid.UUID, actorRole string, input SubmitDraftInput) (*models.Draft, error) {
	if _, err := s.campaignRepo.GetByID(ctx, input.CampaignID); err != nil {
		return nil, err
	}

	accepted, err := s.draftRepo.HasAcceptedInvitation(ctx, input.CampaignID, actorID)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, apperr.Forbidden("no active collaboration with this campaign")
	}

	if err := validateDraftContent(input.Title, input.ContentType, input.Caption); err != nil {
		return nil, err
	}

	draft := &models.Draft{
		CampaignID:       input.CampaignID,
		InfluencerUserID: actorID,
		Title:            input.Title,
		ContentType:      input.ContentType,
		Caption:          input.Caption,
		MediaURLs:        input.MediaURLs,
		Status:           models.DraftStatusPending,
	}
	if err := s.draftRepo.Create(ctx, draft); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      "draft_submitted",
		EntityType:  "draft",
		EntityID:    &draft.ID,
		Meta:        map[string]any{"campaign_id": input.CampaignID.String(), "content_type": input.ContentType},
	})

	s.publishStatusChange(ctx, draft, "", models.DraftStatusPending)

	if c, cerr := s.campaignRepo.GetByID(ctx, input.CampaignID); cerr == nil {
		s.notifier.Notify(c.BrandUserID, "A new draft is awaiting your review")
	}

	return draft, nil
}

// Resubmit replaces the content of a draft whose reviewer requested changes
// and returns it to pending. The same draft row mutates; revision history
// lives in the feedback log, not in draft copies.
func (s *DraftService) Resubmit(ctx context.Context, actorID uuid.UUID, actorRole string, draftID uuid.UUID, input SubmitDraftInput) (*models.Draft, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanSubmitDraft(actorID, actorRole, draft) {
		return nil, apperr.Forbidden("not your draft")
	}
	if err := validateDraftContent(input.Title, input.ContentType, input.Caption); err != nil {
		return nil, err
	}

	ok, err := s.draftRepo.Resubmit(ctx, draftID, input.Title, input.ContentType, input.Caption, input.MediaURLs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.InvalidState("draft is not awaiting revision")
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      "draft_resubmitted",
		EntityType:  "draft",
		EntityID:    &draftID,
		Meta:        map[string]any{"campaign_id": draft.CampaignID.String()},
	})

	s.publishStatusChange(ctx, draft, models.DraftStatusRevisionRequested, models.DraftStatusPending)

	if c, cerr := s.campaignRepo.GetByID(ctx, draft.CampaignID); cerr == nil {
		s.notifier.Notify(c.BrandUserID, "A revised draft is awaiting your review")
	}

	return s.draftRepo.GetByID(ctx, draftID)
}

// MarkPosted records that the approved content went live. Only approved
// drafts can move to posted, and posted is terminal.
func (s *DraftService) MarkPosted(ctx context.Context, actorID uuid.UUID, actorRole string, draftID uuid.UUID) (*models.Draft, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanSubmitDraft(actorID, actorRole, draft) {
		return nil, apperr.Forbidden("not your draft")
	}

	ok, err := s.draftRepo.MarkPosted(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.InvalidState("only approved drafts can be marked posted")
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      "draft_posted",
		EntityType:  "draft",
		EntityID:    &draftID,
		Meta:        map[string]any{"campaign_id": draft.CampaignID.String()},
	})

	s.publishStatusChange(ctx, draft, models.DraftStatusApproved, models.DraftStatusPosted)

	if c, cerr := s.campaignRepo.GetByID(ctx, draft.CampaignID); cerr == nil {
		s.notifier.Notify(c.BrandUserID, "Approved content has been posted")
	}

	return s.draftRepo.GetByID(ctx, draftID)
}

// Get returns a draft to its influencer, the campaign's brand, or an admin.
func (s *DraftService) Get(ctx context.Context, actorID uuid.UUID, actorRole string, draftID uuid.UUID) (*models.Draft, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, actorID, actorRole, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DraftService) List(ctx context.Context, actorID uuid.UUID, actorRole string, f repositories.DraftFilter) ([]models.Draft, error) {
	// Influencers only ever see their own drafts.
	if actorRole == models.RoleInfluencer {
		f.InfluencerUserID = actorID
	}
	if actorRole == models.RoleBrand {
		if f.CampaignID == uuid.Nil {
			return nil, apperr.InvalidInput("campaign_id is required")
		}
		c, err := s.campaignRepo.GetByID(ctx, f.CampaignID)
		if err != nil {
			return nil, err
		}
		if !rbac.CanManageCampaign(actorID, actorRole, c) {
			return nil, apperr.Forbidden("not allowed to view this campaign's drafts")
		}
	}
	return s.draftRepo.List(ctx, f)
}

func (s *DraftService) ListFeedback(ctx context.Context, actorID uuid.UUID, actorRole string, draftID uuid.UUID) ([]models.FeedbackEntry, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, actorID, actorRole, draft); err != nil {
		return nil, err
	}
	return s.draftRepo.ListFeedback(ctx, draftID)
}

func (s *DraftService) GetEvents(ctx context.Context, actorID uuid.UUID, actorRole string, draftID uuid.UUID) ([]models.AuditLog, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, actorID, actorRole, draft); err != nil {
		return nil, err
	}
	return s.auditRepo.GetByEntity(ctx, "draft", draftID, 100, 0)
}

func (s *DraftService) authorizeView(ctx context.Context, actorID uuid.UUID, actorRole string, draft *models.Draft) error {
	if actorRole == models.RoleAdmin || draft.InfluencerUserID == actorID {
		return nil
	}
	c, err := s.campaignRepo.GetByID(ctx, draft.CampaignID)
	if err != nil {
		return err
	}
	if !rbac.CanManageCampaign(actorID, actorRole, c) {
		return apperr.Forbidden("not allowed to view this draft")
	}
	return nil
}

func (s *DraftService) publishStatusChange(ctx context.Context, draft *models.Draft, oldStatus, newStatus string) {
	_ = s.publisher.Publish(ctx, events.StreamWorkflow, events.Event{
		Type: events.EventDraftStatusChanged,
		Payload: map[string]any{
			"draft_id":           draft.ID.String(),
			"campaign_id":        draft.CampaignID.String(),
			"influencer_user_id": draft.InfluencerUserID.String(),
			"old_status":         oldStatus,
			"new_status":         newStatus,
		},
	})
}
