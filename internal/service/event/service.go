// Package event manages the dated events of a group.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/access"
)

type groupRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	GetByLeader(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error)
}

type eventRepo interface {
	List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	Create(ctx context.Context, ev *domain.Event) (*domain.Event, error)
}

// Service implements event operations.
type Service struct {
	log    *slog.Logger
	groups groupRepo
	events eventRepo
}

// NewService creates a new event service.
func NewService(logger *slog.Logger, groups groupRepo, events eventRepo) *Service {
	return &Service{
		log:    logger.With("service", "event"),
		groups: groups,
		events: events,
	}
}

// CreateInput holds parameters for creating an event.
type CreateInput struct {
	GroupID     *uuid.UUID
	Title       string
	Description *string
	Location    *string
	Date        time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Location != nil && len(*i.Location) > 255 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput filters a group's events. From and To are inclusive days.
type ListInput struct {
	GroupID *uuid.UUID
	From    *time.Time
	To      *time.Time
}

// Create adds an event to the leader's own group.
func (s *Service) Create(ctx context.Context, p domain.Principal, input CreateInput) (*domain.Event, error) {
	if p.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	group, err := access.OwnGroup(ctx, s.groups, p, input.GroupID)
	if err != nil {
		return nil, err
	}

	created, err := s.events.Create(ctx, &domain.Event{
		GroupID:     group.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: blankToNil(input.Description),
		Location:    blankToNil(input.Location),
		Date:        input.Date.UTC(),
		CreatedBy:   &p.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("event.Create: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("user_id", p.UserID.String()),
		slog.String("group_id", group.ID.String()),
		slog.String("event_id", created.ID.String()),
	)
	return created, nil
}

// List returns the events of the group p may read, newest first.
func (s *Service) List(ctx context.Context, p domain.Principal, input ListInput) ([]domain.Event, error) {
	if input.From != nil && input.To != nil && input.From.After(*input.To) {
		return nil, domain.NewValidationError("to", "must not be before from")
	}

	group, err := access.ReadableGroup(ctx, s.groups, p, input.GroupID)
	if err != nil {
		return nil, err
	}

	filter := domain.EventFilter{GroupID: group.ID}
	if input.From != nil {
		from := domain.TruncateToDay(*input.From)
		filter.From = &from
	}
	if input.To != nil {
		to := domain.EndOfDay(*input.To)
		filter.To = &to
	}

	events, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("event.List: %w", err)
	}
	return events, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
