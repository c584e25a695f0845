package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a roster of members under one leader. Members reference the
// group through User.GroupID.
type Group struct {
	ID        uuid.UUID
	Name      string
	LeaderID  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
