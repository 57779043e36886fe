package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// Resolve maps a principal descriptor to a stored user record.
//
// Resolution order is id, then email, then name; the first match wins. The id
// is the most authoritative descriptor and the case-insensitive name the most
// ambiguous, so the order is fixed.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ID != nil && *input.ID != uuid.Nil {
		u, err := s.users.GetByID(ctx, *input.ID)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("resolve by id: %w", err)
		}
	}

	if input.Email != nil {
		if email := strings.TrimSpace(*input.Email); email != "" {
			u, err := s.users.GetByEmail(ctx, email)
			if err == nil {
				return u, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("resolve by email: %w", err)
			}
		}
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			u, err := s.users.GetByName(ctx, name)
			if err == nil {
				return u, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("resolve by name: %w", err)
			}
		}
	}

	return nil, fmt.Errorf("principal: %w", domain.ErrNotFound)
}
