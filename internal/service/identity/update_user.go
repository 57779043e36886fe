package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// UpdateUser applies a partial update to a user account. Admins may update
// anyone; responsibles may update their own collaborators.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	caller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("caller: %w", err)
	}

	target, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("target user: %w", err)
	}

	if !caller.CanManage(target) {
		return nil, domain.ErrForbidden
	}

	// role and team changes are admin territory
	if (input.Role != nil || input.TeamOwnerID != nil || input.ClearTeam) && !caller.Role.IsAdmin() {
		return nil, fmt.Errorf("role and team changes: %w", domain.ErrForbidden)
	}

	changes := map[string]any{}
	if input.Name != nil {
		target.Name = strings.TrimSpace(*input.Name)
		changes["name"] = target.Name
	}
	if input.Email != nil {
		target.Email = trimOrNil(input.Email)
		changes["email"] = input.Email
	}
	if input.Role != nil {
		target.Role = *input.Role
		changes["role"] = input.Role.String()
	}
	if input.ClearTeam {
		target.TeamOwnerID = nil
		changes["team_owner_id"] = nil
	}
	if input.TeamOwnerID != nil {
		owner, err := s.users.GetByID(ctx, *input.TeamOwnerID)
		if err != nil {
			return nil, fmt.Errorf("team owner: %w", err)
		}
		if owner.Role != domain.UserRoleResponsible {
			return nil, domain.NewValidationError("team_owner_id", "must reference a responsible")
		}
		target.TeamOwnerID = input.TeamOwnerID
		changes["team_owner_id"] = input.TeamOwnerID.String()
	}
	if input.Status != nil {
		target.Status = *input.Status
		changes["status"] = input.Status.String()
	}

	if target.TeamOwnerID != nil && target.Role != domain.UserRoleCollaborator {
		return nil, domain.NewValidationError("team_owner_id", "only collaborators belong to a team")
	}

	target.UpdatedBy = callerID.String()

	updated, err := s.users.Update(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeUser, &updated.ID, domain.AuditActionUpdate, changes)

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", updated.ID.String()),
		slog.String("updated_by", callerID.String()),
	)

	return updated, nil
}
