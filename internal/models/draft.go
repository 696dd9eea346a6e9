package models

import (
	"time"

	"github.com/google/uuid"
)

// Draft statuses
const (
	DraftStatusPending           = "pending"
	DraftStatusApproved          = "approved"
	DraftStatusRejected          = "rejected"
	DraftStatusRevisionRequested = "revision_requested"
	DraftStatusPosted            = "posted"
)

// Valid draft status transitions: from -> []to.
// The revision loop returns to pending only through resubmission; rejected
// and posted are terminal.
var ValidDraftTransitions = map[string][]string{
	DraftStatusPending:           {DraftStatusApproved, DraftStatusRejected, DraftStatusRevisionRequested},
	DraftStatusApproved:          {DraftStatusPosted},
	DraftStatusRejected:          {},
	DraftStatusRevisionRequested: {DraftStatusPending},
	DraftStatusPosted:            {},
}

func IsValidDraftTransition(from, to string) bool {
	allowed, ok := ValidDraftTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Content types
const (
	ContentTypePost     = "post"
	ContentTypeStory    = "story"
	ContentTypeReel     = "reel"
	ContentTypeCarousel = "carousel"
)

var AllContentTypes = []string{ContentTypePost, ContentTypeStory, ContentTypeReel, ContentTypeCarousel}

func IsValidContentType(t string) bool {
	for _, ct := range AllContentTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// Review actions
const (
	ReviewActionApprove         = "approve"
	ReviewActionReject          = "reject"
	ReviewActionRequestRevision = "request_revision"
)

func IsValidReviewAction(a string) bool {
	return a == ReviewActionApprove || a == ReviewActionReject || a == ReviewActionRequestRevision
}

// Feedback categories, derived from the review action that produced the entry.
const (
	FeedbackCategoryApproval  = "approval"
	FeedbackCategoryRevision  = "revision"
	FeedbackCategoryRejection = "rejection"
)

// Draft is one piece of content submitted against an accepted invitation.
// It back-references its campaign and influencer; it never owns either.
type Draft struct {
	ID               uuid.UUID  `json:"id"`
	CampaignID       uuid.UUID  `json:"campaign_id"`
	InfluencerUserID uuid.UUID  `json:"influencer_user_id"`
	Title            string     `json:"title"`
	ContentType      string     `json:"content_type"`
	Caption          string     `json:"caption"`
	MediaURLs        []string   `json:"media_urls,omitempty"`
	Status           string     `json:"status"`
	ReviewedBy       *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`
	PostedAt         *time.Time `json:"posted_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// FeedbackEntry is one append-only feedback record on a draft.
type FeedbackEntry struct {
	ID           uuid.UUID `json:"id"`
	DraftID      uuid.UUID `json:"draft_id"`
	AuthorUserID uuid.UUID `json:"author_user_id"`
	AuthorRole   string    `json:"author_role"`
	Message      string    `json:"message"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
}
