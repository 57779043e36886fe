package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/auth"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/identity"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Principal, error)
}

type principalResolver interface {
	Resolve(ctx context.Context, input identity.ResolveInput) (*domain.User, error)
}

// Auth validates the bearer token, resolves its principal against the user
// store, and attaches the caller's id and stored role to the context.
// Requests without a bearer token pass through anonymously; protected
// handlers reject them via the missing context identity.
func Auth(validator tokenValidator, resolver principalResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			principal, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := resolver.Resolve(r.Context(), identity.ResolveInput{
				ID:    principal.ID,
				Email: principal.Email,
				Name:  principal.Name,
			})
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !user.IsActive() {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			// The stored role wins over whatever the token claims.
			ctx := ctxutil.WithUserID(r.Context(), user.ID)
			ctx = ctxutil.WithRole(ctx, user.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
