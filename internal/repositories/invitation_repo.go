package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/models"
)

// InvitationRepo persists invitations as an explicit entity keyed by the
// composite (campaign_id, influencer_user_id) pair. A UNIQUE constraint on
// that pair enforces the at-most-one-invitation invariant at the storage
// layer, and every status change is a compare-and-set on the current status.
type InvitationRepo struct {
	pool *pgxpool.Pool
}

func NewInvitationRepo(pool *pgxpool.Pool) *InvitationRepo {
	return &InvitationRepo{pool: pool}
}

func (r *InvitationRepo) Create(ctx context.Context, inv *models.Invitation) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO invitations (campaign_id, influencer_user_id, status, estimated_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, inv.CampaignID, inv.InfluencerUserID, inv.Status, inv.EstimatedPrice,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("influencer already invited to this campaign")
		}
		return apperr.Unavailable(err)
	}
	return nil
}

func (r *InvitationRepo) GetByPair(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Invitation, error) {
	var inv models.Invitation
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_user_id, status, estimated_price, responded_at, created_at
		FROM invitations WHERE campaign_id = $1 AND influencer_user_id = $2
	`, campaignID, influencerID).Scan(&inv.ID, &inv.CampaignID, &inv.InfluencerUserID,
		&inv.Status, &inv.EstimatedPrice, &inv.RespondedAt, &inv.CreatedAt)
	if err != nil {
		return nil, translate(err, "no invitation for this campaign and influencer")
	}
	return &inv, nil
}

// Respond records the influencer's decision with a compare-and-set keyed on
// status pending: two concurrent responses produce exactly one success.
// Returns false when the invitation was no longer pending.
func (r *InvitationRepo) Respond(ctx context.Context, campaignID, influencerID uuid.UUID, decision string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE invitations SET status = $1, responded_at = now()
		WHERE campaign_id = $2 AND influencer_user_id = $3 AND status = $4
	`, decision, campaignID, influencerID, models.InvitationStatusPending)
	if err != nil {
		return false, apperr.Unavailable(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *InvitationRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.Invitation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, influencer_user_id, status, estimated_price, responded_at, created_at
		FROM invitations WHERE campaign_id = $1 ORDER BY created_at
	`, campaignID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	defer rows.Close()

	var invs []models.Invitation
	for rows.Next() {
		var inv models.Invitation
		if err := rows.Scan(&inv.ID, &inv.CampaignID, &inv.InfluencerUserID,
			&inv.Status, &inv.EstimatedPrice, &inv.RespondedAt, &inv.CreatedAt); err != nil {
			return nil, apperr.Unavailable(err)
		}
		invs = append(invs, inv)
	}
	return invs, nil
}

// InvitedSet returns the ids of influencers already invited to a campaign,
// regardless of response state.
func (r *InvitationRepo) InvitedSet(ctx context.Context, campaignID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT influencer_user_id FROM invitations WHERE campaign_id = $1
	`, campaignID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	defer rows.Close()

	set := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperr.Unavailable(err)
		}
		set[id] = true
	}
	return set, nil
}

func (r *InvitationRepo) ListByInfluencer(ctx context.Context, influencerID uuid.UUID, limit, offset int) ([]models.InvitationWithCampaign, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.campaign_id, i.influencer_user_id, i.status, i.estimated_price, i.responded_at, i.created_at,
		       c.title, c.brand_user_id, c.status
		FROM invitations i
		JOIN campaigns c ON c.id = i.campaign_id
		WHERE i.influencer_user_id = $1
		ORDER BY i.created_at DESC LIMIT $2 OFFSET $3
	`, influencerID, limit, offset)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	defer rows.Close()

	var invs []models.InvitationWithCampaign
	for rows.Next() {
		var inv models.InvitationWithCampaign
		if err := rows.Scan(&inv.ID, &inv.CampaignID, &inv.InfluencerUserID,
			&inv.Status, &inv.EstimatedPrice, &inv.RespondedAt, &inv.CreatedAt,
			&inv.CampaignTitle, &inv.BrandUserID, &inv.CampaignStatus); err != nil {
			return nil, apperr.Unavailable(err)
		}
		invs = append(invs, inv)
	}
	return invs, nil
}
