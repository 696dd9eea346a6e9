package models

import (
	"time"

	"github.com/google/uuid"
)

// MetricsSnapshot is one observation of an influencer's public audience
// metrics. Snapshots are append-only; the newest one is what the matcher and
// pricing see. Freshness is best effort.
type MetricsSnapshot struct {
	ID               uuid.UUID `json:"id"`
	InfluencerUserID uuid.UUID `json:"influencer_user_id"`
	Followers        int64     `json:"followers"`
	EngagementRate   float64   `json:"engagement_rate"`
	AvgLikes         *int      `json:"avg_likes,omitempty"`
	AvgComments      *int      `json:"avg_comments,omitempty"`
	Source           string    `json:"source"` // "profile_scrape" or "manual"
	FetchedAt        time.Time `json:"fetched_at"`
}
