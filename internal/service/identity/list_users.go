package identity

import (
	"context"
	"fmt"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// ListUsers returns users visible to the caller. Admins see everyone;
// responsibles see themselves plus their collaborators.
func (s *Service) ListUsers(ctx context.Context, input ListUsersInput) ([]domain.User, error) {
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

	filter := domain.UserFilter{
		Role:        input.Role,
		TeamOwnerID: input.TeamOwnerID,
		Status:      input.Status,
	}

	switch {
	case role.IsAdmin():
		// unscoped
	case role == domain.UserRoleResponsible:
		filter.TeamOwnerID = &callerID
	default:
		return nil, domain.ErrForbidden
	}

	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	if role == domain.UserRoleResponsible {
		self, err := s.users.GetByID(ctx, callerID)
		if err != nil {
			return nil, fmt.Errorf("caller: %w", err)
		}
		users = append([]domain.User{*self}, users...)
	}

	return users, nil
}

// Team returns the collaborators attached to a responsible.
func (s *Service) Team(ctx context.Context, input TeamInput) ([]domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	role := domain.UserRoleCollaborator
	users, err := s.users.List(ctx, domain.UserFilter{
		Role:        &role,
		TeamOwnerID: &input.ResponsibleID,
	})
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}

	return users, nil
}
