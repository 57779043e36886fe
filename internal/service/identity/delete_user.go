package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// DeleteUser soft-deletes a user account. Admin only; the row is flagged,
// never removed, so entry history stays intact.
func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if userID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}
	if userID == callerID {
		return domain.NewValidationError("user_id", "cannot delete yourself")
	}

	if err := s.users.SoftDelete(ctx, userID, callerID.String()); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeUser, &userID, domain.AuditActionDelete, nil)

	s.log.InfoContext(ctx, "user deleted",
		slog.String("user_id", userID.String()),
		slog.String("deleted_by", callerID.String()),
	)

	return nil
}
