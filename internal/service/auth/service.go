// Package auth implements the local login flow: password verification
// against stored bcrypt hashes and access token issuance.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(user *domain.User) (string, error)
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	jwt       jwtManager
	accessTTL time.Duration
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	accessTTL time.Duration,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		jwt:       jwt,
		accessTTL: accessTTL,
	}
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
