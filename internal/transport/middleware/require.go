package middleware

import (
	"context"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Use inside handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireReviewer returns domain.ErrForbidden unless the context user is a
// responsible or an admin.
func RequireReviewer(ctx context.Context) error {
	if !ctxutil.IsReviewerCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
