package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// RestoreUser reverses a soft delete. Admin only. NotFound covers both
// unknown users and users that are not currently deleted.
func (s *Service) RestoreUser(ctx context.Context, userID uuid.UUID) error {
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

	if err := s.users.Restore(ctx, userID, callerID.String()); err != nil {
		return fmt.Errorf("restore user: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeUser, &userID, domain.AuditActionUpdate, map[string]any{
		"restored": true,
	})

	s.log.InfoContext(ctx, "user restored",
		slog.String("user_id", userID.String()),
		slog.String("restored_by", callerID.String()),
	)

	return nil
}
