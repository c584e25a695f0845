package attendance

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// SubmitInput replaces the present-set of one day.
type SubmitInput struct {
	GroupID    *uuid.UUID
	EventID    *uuid.UUID
	Date       time.Time
	PresentIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	for _, id := range i.PresentIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "present_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MarkInput sets one member present or absent on one day.
type MarkInput struct {
	GroupID  *uuid.UUID
	EventID  *uuid.UUID
	Date     time.Time
	MemberID uuid.UUID
	Present  bool
}

// Validate checks all fields and collects all errors.
func (i MarkInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.MemberID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "member_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput filters the records of a group. From and To are inclusive days.
type ListInput struct {
	GroupID *uuid.UUID
	EventID *uuid.UUID
	From    *time.Time
	To      *time.Time
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.From != nil && i.To != nil && i.From.After(*i.To) {
		return domain.NewValidationError("to", "must not be before from")
	}
	return nil
}
