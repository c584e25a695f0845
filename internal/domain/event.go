package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a dated happening of a group. Used as an optional attendance filter.
type Event struct {
	ID          uuid.UUID
	GroupID     uuid.UUID
	Title       string
	Description *string
	Location    *string
	Date        time.Time
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventFilter restricts an event listing. From and To are inclusive.
type EventFilter struct {
	GroupID uuid.UUID
	EventID *uuid.UUID
	From    *time.Time
	To      *time.Time
}
