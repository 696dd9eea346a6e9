package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/models"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, handle, display_name, role, categories, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, last_active_at
	`, u.Email, u.Handle, u.DisplayName, u.Role, u.Categories, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt, &u.LastActiveAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("email or handle already registered")
		}
		return apperr.Unavailable(err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, handle, display_name, role, categories, password_hash, created_at, last_active_at
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.Handle, &u.DisplayName, &u.Role, &u.Categories, &u.PasswordHash, &u.CreatedAt, &u.LastActiveAt)
	if err != nil {
		return nil, translate(err, "user %s not found", id)
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, handle, display_name, role, categories, password_hash, created_at, last_active_at
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Handle, &u.DisplayName, &u.Role, &u.Categories, &u.PasswordHash, &u.CreatedAt, &u.LastActiveAt)
	if err != nil {
		return nil, translate(err, "user not found")
	}
	return &u, nil
}

func (r *UserRepo) UpdateLastActive(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET last_active_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

func (r *UserRepo) GetActiveInfluencerIDs(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id FROM users WHERE role = 'influencer' AND last_active_at > $1
	`, since)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperr.Unavailable(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
