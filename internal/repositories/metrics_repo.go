package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/matching"
	"github.com/influencer-marketplace/backend/internal/models"
)

type MetricsRepo struct {
	pool *pgxpool.Pool
}

func NewMetricsRepo(pool *pgxpool.Pool) *MetricsRepo {
	return &MetricsRepo{pool: pool}
}

func (r *MetricsRepo) InsertSnapshot(ctx context.Context, s *models.MetricsSnapshot) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO metrics_snapshots (influencer_user_id, followers, engagement_rate, avg_likes, avg_comments, source, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, fetched_at
	`, s.InfluencerUserID, s.Followers, s.EngagementRate, s.AvgLikes, s.AvgComments, s.Source,
	).Scan(&s.ID, &s.FetchedAt)
	if err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

func (r *MetricsRepo) GetLatest(ctx context.Context, influencerID uuid.UUID) (*models.MetricsSnapshot, error) {
	var s models.MetricsSnapshot
	err := r.pool.QueryRow(ctx, `
		SELECT id, influencer_user_id, followers, engagement_rate, avg_likes, avg_comments, source, fetched_at
		FROM metrics_snapshots WHERE influencer_user_id = $1
		ORDER BY fetched_at DESC LIMIT 1
	`, influencerID).Scan(&s.ID, &s.InfluencerUserID, &s.Followers, &s.EngagementRate, &s.AvgLikes, &s.AvgComments, &s.Source, &s.FetchedAt)
	if err != nil {
		return nil, translate(err, "no metrics recorded for influencer %s", influencerID)
	}
	return &s, nil
}

// CandidatePool returns every influencer together with their newest metrics
// snapshot, ordered by registration time so ranking ties are reproducible.
// Influencers with no snapshot yet are included with zero metrics; the
// matcher's bounds decide whether they survive.
func (r *MetricsRepo) CandidatePool(ctx context.Context) ([]matching.PoolEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.handle, u.display_name, u.categories,
		       COALESCE(ms.followers, 0), COALESCE(ms.engagement_rate, 0)
		FROM users u
		LEFT JOIN LATERAL (
			SELECT followers, engagement_rate FROM metrics_snapshots
			WHERE influencer_user_id = u.id ORDER BY fetched_at DESC LIMIT 1
		) ms ON true
		WHERE u.role = 'influencer'
		ORDER BY u.created_at
	`)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	defer rows.Close()

	var pool []matching.PoolEntry
	for rows.Next() {
		var p matching.PoolEntry
		if err := rows.Scan(&p.UserID, &p.Handle, &p.DisplayName, &p.Categories, &p.Followers, &p.EngagementRate); err != nil {
			return nil, apperr.Unavailable(err)
		}
		pool = append(pool, p)
	}
	return pool, nil
}
