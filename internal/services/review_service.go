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

// ReviewService owns the brand side of the draft lifecycle: approve, reject,
// or request revision on a pending draft, always leaving a feedback entry
// behind for the rejection and revision paths.
type ReviewService struct {
	draftRepo    *repositories.DraftRepo
	campaignRepo *repositories.CampaignRepo
	auditRepo    *repositories.AuditRepo
	notifier     *NotifierClient
	publisher    events.Publisher
	log          *zap.Logger
}

func NewReviewService(
	draftRepo *repositories.DraftRepo,
	campaignRepo *repositories.CampaignRepo,
	auditRepo *repositories.AuditRepo,
	notifier *NotifierClient,
	publisher events.Publisher,
	log *zap.Logger,
) *ReviewService {
	return &ReviewService{
		draftRepo:    draftRepo,
		campaignRepo: campaignRepo,
		auditRepo:    auditRepo,
		notifier:     notifier,
		publisher:    publisher,
		log:          log,
	}
}

// statusForAction maps a review action to the resulting draft status.
func statusForAction(action string) string {
	switch action {
	case models.ReviewActionApprove:
		return models.DraftStatusApproved
	case models.ReviewActionReject:
		return models.DraftStatusRejected
	case models.ReviewActionRequestRevision:
		return models.DraftStatusRevisionRequested
	}
	return ""
}

// categoryForAction maps a review action to the feedback category recorded
// alongside it.
func categoryForAction(action string) string {
	switch action {
	case models.ReviewActionApprove:
		return models.FeedbackCategoryApproval
	case models.ReviewActionReject:
		return models.FeedbackCategoryRejection
	case models.ReviewActionRequestRevision:
		return models.FeedbackCategoryRevision
	}
	return ""
}

// feedbackRequired reports whether the action must carry a feedback message.
// Approval may be silent; rejection and revision requests must explain
// themselves.
func feedbackRequired(action string) bool {
	return action != models.ReviewActionApprove
}

// Review applies a single review action to a pending draft. The status write
// is a compare-and-set on pending, so concurrent reviews resolve to one
// winner and the loser gets a conflict.
func (s *ReviewService) Review(ctx context.Context, actorID uuid.UUID, actorRole string, draftID uuid.UUID, action, feedback string) (*models.Draft, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	c, err := s.campaignRepo.GetByID(ctx, draft.CampaignID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanReviewDraft(actorID, actorRole, c) {
		return nil, apperr.Forbidden("not allowed to review this draft")
	}
	if !models.IsValidReviewAction(action) {
		return nil, apperr.InvalidInput("action must be one of: approve, reject, request_revision")
	}
	if feedback == "" && feedbackRequired(action) {
		return nil, apperr.InvalidInput("feedback is required for %s", action)
	}

	target := statusForAction(action)
	if draft.Status != models.DraftStatusPending {
		return nil, apperr.InvalidState("draft is %s, only pending drafts can be reviewed", draft.Status)
	}

	var rejectionReason *string
	if action == models.ReviewActionReject {
		rejectionReason = &feedback
	}

	ok, err := s.draftRepo.ReviewFrom(ctx, draftID, target, actorID, rejectionReason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Conflict("draft was reviewed concurrently")
	}

	if feedback != "" {
		_ = s.draftRepo.AddFeedback(ctx, &models.FeedbackEntry{
			DraftID:      draftID,
			AuthorUserID: actorID,
			AuthorRole:   models.RoleBrand,
			Message:      feedback,
			Category:     categoryForAction(action),
		})
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      fmt.Sprintf("draft_%s", action),
		EntityType:  "draft",
		EntityID:    &draftID,
		Meta: map[string]any{
			"campaign_id": draft.CampaignID.String(),
			"old_status":  models.DraftStatusPending,
			"new_status":  target,
		},
	})

	_ = s.publisher.Publish(ctx, events.StreamWorkflow, events.Event{
		Type: events.EventDraftStatusChanged,
		Payload: map[string]any{
			"draft_id":           draftID.String(),
			"campaign_id":        draft.CampaignID.String(),
			"influencer_user_id": draft.InfluencerUserID.String(),
			"old_status":         models.DraftStatusPending,
			"new_status":         target,
		},
	})

	s.notifier.Notify(draft.InfluencerUserID,
		fmt.Sprintf("Your draft %q was %s", draft.Title, target))

	return s.draftRepo.GetByID(ctx, draftID)
}
