package models

import (
	"time"

	"github.com/google/uuid"
)

// Invitation statuses
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusRejected = "rejected"
)

// Valid invitation status transitions: from -> []to.
// Accepted and rejected are terminal; nothing returns to pending.
var ValidInvitationTransitions = map[string][]string{
	InvitationStatusPending:  {InvitationStatusAccepted, InvitationStatusRejected},
	InvitationStatusAccepted: {},
	InvitationStatusRejected: {},
}

func IsValidInvitationTransition(from, to string) bool {
	allowed, ok := ValidInvitationTransitions[from]
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

func IsValidInvitationDecision(d string) bool {
	return d == InvitationStatusAccepted || d == InvitationStatusRejected
}

// Invitation records one influencer being asked to join one campaign.
// At most one invitation exists per (campaign, influencer) pair; the
// estimated price is frozen at invite time and stays valid even if the
// influencer's metrics later change.
type Invitation struct {
	ID               uuid.UUID  `json:"id"`
	CampaignID       uuid.UUID  `json:"campaign_id"`
	InfluencerUserID uuid.UUID  `json:"influencer_user_id"`
	Status           string     `json:"status"`
	EstimatedPrice   float64    `json:"estimated_price"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// InvitationWithCampaign embeds Invitation and adds campaign info for the
// influencer inbox to avoid N+1 queries.
type InvitationWithCampaign struct {
	Invitation
	CampaignTitle  string    `json:"campaign_title"`
	BrandUserID    uuid.UUID `json:"campaign_brand_user_id"`
	CampaignStatus string    `json:"campaign_status"`
}
