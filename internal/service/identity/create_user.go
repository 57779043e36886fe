package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// CreateUser creates a new user account.
//
// Admins may create any user. Responsibles may only create collaborators,
// who are attached to their own team. A collaborator's team owner, when set,
// must reference a responsible.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	role, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	teamOwnerID := input.TeamOwnerID
	switch {
	case role.IsAdmin():
		// no restriction
	case role == domain.UserRoleResponsible:
		if input.Role != domain.UserRoleCollaborator {
			return nil, fmt.Errorf("responsible may only create collaborators: %w", domain.ErrForbidden)
		}
		teamOwnerID = &callerID
	default:
		return nil, domain.ErrForbidden
	}

	if teamOwnerID != nil {
		owner, err := s.users.GetByID(ctx, *teamOwnerID)
		if err != nil {
			return nil, fmt.Errorf("team owner: %w", err)
		}
		if owner.Role != domain.UserRoleResponsible {
			return nil, domain.NewValidationError("team_owner_id", "must reference a responsible")
		}
	}

	var passwordHash *string
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hash)
		passwordHash = &h
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        trimOrNil(input.Email),
		Role:         input.Role,
		TeamOwnerID:  teamOwnerID,
		Status:       domain.UserStatusActive,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    callerID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeUser, &user.ID, domain.AuditActionCreate, map[string]any{
		"name": user.Name,
		"role": user.Role.String(),
	})

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return user, nil
}
