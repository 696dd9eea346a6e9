// Package matching ranks influencer candidates against a campaign's
// targeting criteria and budget. The core is pure: given the same campaign,
// pool, and estimator it always produces the same ordered result.
package matching

import (
	"sort"

	"github.com/google/uuid"

	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/pricing"
)

// PoolEntry is one influencer in the candidate pool together with their
// latest observed metrics.
type PoolEntry struct {
	UserID         uuid.UUID
	Handle         string
	DisplayName    *string
	Followers      int64
	EngagementRate float64
	Categories     []string
}

// Candidate is a ranked recommendation: a pool entry annotated with the
// estimated price and whether the campaign already invited this influencer.
// It is a projection, never persisted.
type Candidate struct {
	UserID         uuid.UUID `json:"user_id"`
	Handle         string    `json:"handle"`
	DisplayName    *string   `json:"display_name,omitempty"`
	Followers      int64     `json:"followers"`
	EngagementRate float64   `json:"engagement_rate"`
	EstimatedPrice float64   `json:"estimated_price"`
	AlreadyInvited bool      `json:"already_invited"`
}

// Rank filters the pool against the campaign bounds, prices the survivors,
// applies the budget band, sorts by follower count descending (ties keep
// input order), truncates to limit, and flags already-invited influencers.
// A zero campaign bound is unconstrained on that side. The invited set is
// informational only, never a filter.
func Rank(c *models.Campaign, pool []PoolEntry, est pricing.Estimator, limit int, invited map[uuid.UUID]bool) []Candidate {
	candidates := make([]Candidate, 0, len(pool))

	for _, p := range pool {
		if c.MinFollowers > 0 && p.Followers < c.MinFollowers {
			continue
		}
		if c.MaxFollowers > 0 && p.Followers > c.MaxFollowers {
			continue
		}
		if c.MinEngagementRate > 0 && p.EngagementRate < c.MinEngagementRate {
			continue
		}
		if len(c.Categories) > 0 && !categoriesOverlap(c.Categories, p.Categories) {
			continue
		}

		price := est.Estimate(p.Followers, p.EngagementRate)
		if c.MinBudget > 0 && price < c.MinBudget {
			continue
		}
		if c.MaxBudget > 0 && price > c.MaxBudget {
			continue
		}

		candidates = append(candidates, Candidate{
			UserID:         p.UserID,
			Handle:         p.Handle,
			DisplayName:    p.DisplayName,
			Followers:      p.Followers,
			EngagementRate: p.EngagementRate,
			EstimatedPrice: price,
			AlreadyInvited: invited[p.UserID],
		})
	}

	// No secondary key: ties keep input order so ranking is reproducible
	// for equal-size accounts.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Followers > candidates[j].Followers
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func categoriesOverlap(want, have []string) bool {
	for _, w := range want {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}
