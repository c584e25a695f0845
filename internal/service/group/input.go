package group

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// CreateInput holds parameters for creating a group.
type CreateInput struct {
	Name     string
	LeaderID *uuid.UUID
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		return domain.NewValidationError("name", "required")
	case len(name) > 255:
		return domain.NewValidationError("name", "too long")
	}
	return nil
}
