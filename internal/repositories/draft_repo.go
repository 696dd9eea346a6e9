package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/models"
)

type DraftRepo struct {
	pool *pgxpool.Pool
}

func NewDraftRepo(pool *pgxpool.Pool) *DraftRepo {
	return &DraftRepo{pool: pool}
}

func (r *DraftRepo) Create(ctx context.Context, d *models.Draft) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO drafts (campaign_id, influencer_user_id, title, content_type, caption, media_urls, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, d.CampaignID, d.InfluencerUserID, d.Title, d.ContentType, d.Caption, d.MediaURLs, d.Status,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

func (r *DraftRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	var d models.Draft
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_user_id, title, content_type, caption, media_urls,
		       status, reviewed_by, reviewed_at, rejection_reason, posted_at, created_at, updated_at
		FROM drafts WHERE id = $1
	`, id).Scan(&d.ID, &d.CampaignID, &d.InfluencerUserID, &d.Title, &d.ContentType,
		&d.Caption, &d.MediaURLs, &d.Status, &d.ReviewedBy, &d.ReviewedAt,
		&d.RejectionReason, &d.PostedAt, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, translate(err, "draft %s not found", id)
	}
	return &d, nil
}

// DraftFilter narrows List. Zero values mean no constraint.
type DraftFilter struct {
	CampaignID       uuid.UUID
	InfluencerUserID uuid.UUID
	Status           string
	Limit            int
	Offset           int
}

func (r *DraftRepo) List(ctx context.Context, f DraftFilter) ([]models.Draft, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	var where []string
	var args []interface{}
	argIdx := 1

	if f.CampaignID != uuid.Nil {
		where = append(where, fmt.Sprintf("campaign_id = $%d", argIdx))
		args = append(args, f.CampaignID)
		argIdx++
	}
	if f.InfluencerUserID != uuid.Nil {
		where = append(where, fmt.Sprintf("influencer_user_id = $%d", argIdx))
		args = append(args, f.InfluencerUserID)
		argIdx++
	}
	if f.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, f.Status)
		argIdx++
	}

	query := `
		SELECT id, campaign_id, influencer_user_id, title, content_type, caption, media_urls,
		       status, reviewed_by, reviewed_at, rejection_reason, posted_at, created_at, updated_at
		FROM drafts`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	defer rows.Close()

	var drafts []models.Draft
	for rows.Next() {
		var d models.Draft
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.InfluencerUserID, &d.Title, &d.ContentType,
			&d.Caption, &d.MediaURLs, &d.Status, &d.ReviewedBy, &d.ReviewedAt,
			&d.RejectionReason, &d.PostedAt, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, apperr.Unavailable(err)
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// ReviewFrom moves a pending draft to the reviewed status and records who
// reviewed it. The compare-and-set on status pending makes concurrent reviews
// resolve to exactly one winner. Returns false when the draft was not pending.
func (r *DraftRepo) ReviewFrom(ctx context.Context, draftID uuid.UUID, to string, reviewerID uuid.UUID, rejectionReason *string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE drafts
		SET status = $1, reviewed_by = $2, reviewed_at = now(), rejection_reason = $3, updated_at = now()
		WHERE id = $4 AND status = $5
	`, to, reviewerID, rejectionReason, draftID, models.DraftStatusPending)
	if err != nil {
		return false, apperr.Unavailable(err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkPosted moves an approved draft to posted. Returns false when the draft
// was not approved.
func (r *DraftRepo) MarkPosted(ctx context.Context, draftID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE drafts SET status = $1, posted_at = now(), updated_at = now()
		WHERE id = $2 AND status = $3
	`, models.DraftStatusPosted, draftID, models.DraftStatusApproved)
	if err != nil {
		return false, apperr.Unavailable(err)
	}
	return tag.RowsAffected() > 0, nil
}

// Resubmit replaces the content of a revision_requested draft and returns it
// to pending, clearing the previous review outcome. Returns false when the
// draft was not awaiting revision.
func (r *DraftRepo) Resubmit(ctx context.Context, draftID uuid.UUID, title, contentType, caption string, mediaURLs []string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE drafts
		SET title = $1, content_type = $2, caption = $3, media_urls = $4,
		    status = $5, reviewed_by = NULL, reviewed_at = NULL, rejection_reason = NULL, updated_at = now()
		WHERE id = $6 AND status = $7
	`, title, contentType, caption, mediaURLs,
		models.DraftStatusPending, draftID, models.DraftStatusRevisionRequested)
	if err != nil {
		return false, apperr.Unavailable(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *DraftRepo) AddFeedback(ctx context.Context, fb *models.FeedbackEntry) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO draft_feedback (draft_id, author_user_id, author_role, message, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, fb.DraftID, fb.AuthorUserID, fb.AuthorRole, fb.Message, fb.Category,
	).Scan(&fb.ID, &fb.CreatedAt)
	if err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

func (r *DraftRepo) ListFeedback(ctx context.Context, draftID uuid.UUID) ([]models.FeedbackEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, draft_id, author_user_id, author_role, message, category, created_at
		FROM draft_feedback WHERE draft_id = $1 ORDER BY created_at
	`, draftID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	defer rows.Close()

	var entries []models.FeedbackEntry
	for rows.Next() {
		var fb models.FeedbackEntry
		if err := rows.Scan(&fb.ID, &fb.DraftID, &fb.AuthorUserID, &fb.AuthorRole,
			&fb.Message, &fb.Category, &fb.CreatedAt); err != nil {
			return nil, apperr.Unavailable(err)
		}
		entries = append(entries, fb)
	}
	return entries, nil
}

// HasAcceptedInvitation reports whether the influencer holds an accepted
// invitation for the campaign, the precondition for submitting a draft.
func (r *DraftRepo) HasAcceptedInvitation(ctx context.Context, campaignID, influencerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM invitations
			WHERE campaign_id = $1 AND influencer_user_id = $2 AND status = $3
		)
	`, campaignID, influencerID, models.InvitationStatusAccepted).Scan(&exists)
	if err != nil {
		return false, apperr.Unavailable(err)
	}
	return exists, nil
}
