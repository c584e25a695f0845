package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(p domain.Principal) (string, time.Time, error)
}

// passwordChecker verifies a password against a stored hash.
type passwordChecker interface {
	Compare(hash, password string) error
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	jwt       jwtManager
	passwords passwordChecker
}

// NewService creates a new auth service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	passwords passwordChecker,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		jwt:       jwt,
		passwords: passwords,
	}
}

// AuthResult is the outcome of a successful login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
