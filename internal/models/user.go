package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleInfluencer = "influencer"
	RoleBrand      = "brand"
	RoleAdmin      = "admin"
)

func IsValidRole(r string) bool {
	return r == RoleInfluencer || r == RoleBrand || r == RoleAdmin
}

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Handle        string    `json:"handle"`
	DisplayName   *string   `json:"display_name,omitempty"`
	Role          string    `json:"role"`
	Categories    []string  `json:"categories,omitempty"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	LastActiveAt  time.Time `json:"last_active_at"`
}
