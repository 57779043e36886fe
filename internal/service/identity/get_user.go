package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// GetUser returns one user. Callers may always read themselves; reading
// someone else requires admin, or a responsible reading an own collaborator.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if callerID == userID {
		return target, nil
	}

	caller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("caller: %w", err)
	}
	if !caller.CanManage(target) {
		return nil, domain.ErrForbidden
	}

	return target, nil
}
