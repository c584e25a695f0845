package user

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

const (
	maxNameLen     = 255
	maxEmailLen    = 254
	maxPhoneLen    = 32
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt limit
)

// CreateInput holds parameters for creating any account.
type CreateInput struct {
	Name     string
	Email    string
	Phone    *string
	Role     domain.UserRole
	Password *string
	GroupID  *uuid.UUID
}

func (i *CreateInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	if i.Phone != nil {
		p := strings.TrimSpace(*i.Phone)
		i.Phone = &p
		if p == "" {
			i.Phone = nil
		}
	}
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = appendName(errs, i.Name)
	errs = appendEmail(errs, i.Email)
	errs = appendPhone(errs, i.Phone)

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be bishop, leader or member"})
	} else if i.Role == domain.UserRoleMember {
		if i.GroupID == nil {
			errs = append(errs, domain.FieldError{Field: "group_id", Message: "required for members"})
		}
		if i.Password != nil {
			errs = append(errs, domain.FieldError{Field: "password", Message: "members cannot log in"})
		}
	}

	errs = appendPassword(errs, i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds optional fields for a bishop account update.
// Nil fields are left unchanged; an empty Phone clears it.
type UpdateInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Role     *domain.UserRole
	Password *string
	GroupID  *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = appendName(errs, strings.TrimSpace(*i.Name))
	}
	if i.Email != nil {
		errs = appendEmail(errs, strings.ToLower(strings.TrimSpace(*i.Email)))
	}
	errs = appendPhone(errs, i.Phone)
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be bishop, leader or member"})
	}
	errs = appendPassword(errs, i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) empty() bool {
	return i.Name == nil && i.Email == nil && i.Phone == nil &&
		i.Role == nil && i.Password == nil && i.GroupID == nil
}

// AddMemberInput holds parameters for a leader adding to their roster.
type AddMemberInput struct {
	GroupID *uuid.UUID
	Name    string
	Email   string
	Phone   *string
}

// Validate checks all fields and collects all errors.
func (i AddMemberInput) Validate() error {
	var errs []domain.FieldError

	errs = appendName(errs, strings.TrimSpace(i.Name))
	errs = appendEmail(errs, strings.ToLower(strings.TrimSpace(i.Email)))
	errs = appendPhone(errs, i.Phone)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Field rules
// ---------------------------------------------------------------------------

func appendName(errs []domain.FieldError, name string) []domain.FieldError {
	switch {
	case name == "":
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len(name) > maxNameLen:
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}

func appendEmail(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLen:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}

func appendPhone(errs []domain.FieldError, phone *string) []domain.FieldError {
	if phone != nil && len(strings.TrimSpace(*phone)) > maxPhoneLen {
		return append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}
	return errs
}

func appendPassword(errs []domain.FieldError, password *string) []domain.FieldError {
	if password == nil {
		return errs
	}
	switch {
	case len(*password) < minPasswordLen:
		return append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	case len(*password) > maxPasswordLen:
		return append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	return errs
}
