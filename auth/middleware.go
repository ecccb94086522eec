// HTTP middleware forming the authenticate/authorize chain. These are
// standard chi-style `func(http.Handler) http.Handler` decorators, applied
// per route group in main.go.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/shipekarrohit/backend-project/apperror"
)

// PrincipalResolver resolves a verified token claim to a live user row.
// AuthService implements it; tests substitute a stub.
type PrincipalResolver interface {
	FindUserByID(ctx context.Context, id int64) (*User, error)
}

// Authenticate returns middleware that resolves the bearer credential on the
// Authorization header to a request-scoped Principal. Three failure branches,
// all short-circuiting with 401: missing/malformed header, invalid or
// expired token, vanished principal. None of them is a server fault.
func Authenticate(tokens *TokenService, resolver PrincipalResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("No token provided. Authorization required.", nil))
				return
			}

			// The header must be of the form "Bearer <token>".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewAuthError("No token provided. Authorization required.", nil))
				return
			}

			claims, ok := tokens.Verify(parts[1])
			if !ok {
				WriteError(w, r, apperror.NewAuthError("Invalid or expired token.", nil))
				return
			}

			// Claims carry identity at issuance time; the only live check is
			// that the user row still exists.
			user, err := resolver.FindUserByID(r.Context(), claims.UserID)
			if err != nil {
				if apperror.IsNotFound(err) {
					WriteError(w, r, apperror.NewAuthError("User not found.", nil))
					return
				}
				WriteError(w, r, err)
				return
			}

			principal := &Principal{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  user.Role,
			}
			next.ServeHTTP(w, r.WithContext(NewContextWithPrincipal(r.Context(), principal)))
		})
	}
}

// Authorize returns middleware gating a route by role. The check is pure set
// membership over the declared roles; there is no hierarchy. A missing
// principal means the route was wired without Authenticate, which is a
// server-side bug but is still surfaced as a 401 since no safe default
// exists.
func Authorize(roles ...Role) func(next http.Handler) http.Handler {
	allowed := make(map[Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				WriteError(w, r, apperror.NewAuthError("Authentication required.", nil))
				return
			}
			if _, ok := allowed[principal.Role]; !ok {
				WriteError(w, r, apperror.NewForbiddenError("Access denied. Insufficient permissions.", nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
