package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// GroupInput holds the filters of a group dashboard request.
// From and To are calendar days, both inclusive.
type GroupInput struct {
	GroupID *uuid.UUID
	EventID *uuid.UUID
	From    *time.Time
	To      *time.Time
	View    MemberView
}

// Validate checks all fields and collects all errors.
func (i GroupInput) Validate() error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && i.From.After(*i.To) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if i.View.Rating != nil && !i.View.Rating.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be Excellent, Average or Poor"})
	}
	if i.View.Sort != "" && !i.View.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be name, attendanceCount, lastAttendanceDate or rating"})
	}
	if i.View.Order != "" && !i.View.Order.IsValid() {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be asc or desc"})
	}
	if i.View.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.View.PageSize < 0 || i.View.PageSize > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MaxPageSize bounds MemberView.PageSize.
const MaxPageSize = 100

// OverviewInput holds the optional date range of the bishop overview.
type OverviewInput struct {
	From *time.Time
	To   *time.Time
}

// Validate checks all fields and collects all errors.
func (i OverviewInput) Validate() error {
	if i.From != nil && i.To != nil && i.From.After(*i.To) {
		return domain.NewValidationError("to", "must not be before from")
	}
	return nil
}

// dayRange turns inclusive calendar-day bounds into timestamp bounds.
func dayRange(from, to *time.Time) (*time.Time, *time.Time) {
	var f, t *time.Time
	if from != nil {
		v := domain.TruncateToDay(*from)
		f = &v
	}
	if to != nil {
		v := domain.EndOfDay(*to)
		t = &v
	}
	return f, t
}
