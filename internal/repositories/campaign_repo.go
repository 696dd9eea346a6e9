package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/models"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (brand_user_id, title, description, min_followers, max_followers,
		                       min_engagement_rate, categories, min_budget, max_budget, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, c.BrandUserID, c.Title, c.Description, c.MinFollowers, c.MaxFollowers,
		c.MinEngagementRate, c.Categories, c.MinBudget, c.MaxBudget, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT id, brand_user_id, title, description, min_followers, max_followers,
		       min_engagement_rate, categories, min_budget, max_budget, status, created_at, updated_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &c.BrandUserID, &c.Title, &c.Description, &c.MinFollowers, &c.MaxFollowers,
		&c.MinEngagementRate, &c.Categories, &c.MinBudget, &c.MaxBudget, &c.Status,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translate(err, "campaign %s not found", id)
	}
	return &c, nil
}

// Update rewrites targeting and budget fields. Status changes go through
// UpdateStatusFrom so transition legality stays compare-and-set guarded.
func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET title = $1, description = $2, min_followers = $3, max_followers = $4,
		       min_engagement_rate = $5, categories = $6, min_budget = $7, max_budget = $8, updated_at = now()
		WHERE id = $9
	`, c.Title, c.Description, c.MinFollowers, c.MaxFollowers,
		c.MinEngagementRate, c.Categories, c.MinBudget, c.MaxBudget, c.ID)
	if err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

// UpdateStatusFrom transitions status only when the row still holds the
// expected source status. Returns false when the guard did not match.
func (r *CampaignRepo) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2 AND status = $3
	`, to, id, from)
	if err != nil {
		return false, apperr.Unavailable(err)
	}
	return tag.RowsAffected() > 0, nil
}

type CampaignFilter struct {
	BrandUserID *uuid.UUID
	Status      *string
	Limit       int
	Offset      int
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, error) {
	query := `
		SELECT id, brand_user_id, title, description, min_followers, max_followers,
		       min_engagement_rate, categories, min_budget, max_budget, status, created_at, updated_at
		FROM campaigns
	`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.BrandUserID != nil {
		where = append(where, fmt.Sprintf("brand_user_id = $%d", argIdx))
		args = append(args, *f.BrandUserID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.BrandUserID, &c.Title, &c.Description, &c.MinFollowers, &c.MaxFollowers,
			&c.MinEngagementRate, &c.Categories, &c.MinBudget, &c.MaxBudget, &c.Status,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, apperr.Unavailable(err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}
