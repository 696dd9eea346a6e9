package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/influencer-marketplace/backend/internal/apperr"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
)

// Valid campaign status transitions: from -> []to
var ValidCampaignTransitions = map[string][]string{
	CampaignStatusDraft:     {CampaignStatusActive},
	CampaignStatusActive:    {CampaignStatusCompleted},
	CampaignStatusCompleted: {},
}

func IsValidCampaignTransition(from, to string) bool {
	allowed, ok := ValidCampaignTransitions[from]
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

// Campaign is a brand's structured request for influencer-produced content.
// A zero bound means the filter is open on that side.
type Campaign struct {
	ID                uuid.UUID `json:"id"`
	BrandUserID       uuid.UUID `json:"brand_user_id"`
	Title             string    `json:"title"`
	Description       *string   `json:"description,omitempty"`
	MinFollowers      int64     `json:"min_followers"`
	MaxFollowers      int64     `json:"max_followers"`
	MinEngagementRate float64   `json:"min_engagement_rate"`
	Categories        []string  `json:"categories,omitempty"`
	MinBudget         float64   `json:"min_budget"`
	MaxBudget         float64   `json:"max_budget"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Validate checks the targeting and budget bound invariants. Bounds are only
// compared when both sides are set.
func (c *Campaign) Validate() error {
	if c.Title == "" {
		return apperr.InvalidInput("title is required")
	}
	if c.MinFollowers < 0 || c.MaxFollowers < 0 {
		return apperr.InvalidInput("follower bounds must be non-negative")
	}
	if c.MinFollowers > 0 && c.MaxFollowers > 0 && c.MinFollowers > c.MaxFollowers {
		return apperr.InvalidInput("min_followers (%d) exceeds max_followers (%d)", c.MinFollowers, c.MaxFollowers)
	}
	if c.MinEngagementRate < 0 {
		return apperr.InvalidInput("min_engagement_rate must be non-negative")
	}
	if c.MinBudget < 0 || c.MaxBudget < 0 {
		return apperr.InvalidInput("budget bounds must be non-negative")
	}
	if c.MinBudget > 0 && c.MaxBudget > 0 && c.MinBudget > c.MaxBudget {
		return apperr.InvalidInput("min_budget (%.2f) exceeds max_budget (%.2f)", c.MinBudget, c.MaxBudget)
	}
	return nil
}
