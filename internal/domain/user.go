package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is any account known to the system. Members are users with
// role "member" and a non-nil GroupID.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Phone        *string
	Role         UserRole
	GroupID      *uuid.UUID
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdateParams holds optional fields for a partial user update.
type UserUpdateParams struct {
	Name    *string
	Email   *string
	Phone   *string // ptr("") clears
	Role    *UserRole
	GroupID *uuid.UUID // ptr(uuid.Nil) clears
}

// Principal is the verified identity of the caller of an operation.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   UserRole
}

// IsZero reports whether no identity is present.
func (p Principal) IsZero() bool {
	return p.UserID == uuid.Nil
}

// HasRole reports whether the principal holds one of roles.
func (p Principal) HasRole(roles ...UserRole) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
