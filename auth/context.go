// Request-scoped identity plumbing. The context carries the authenticated
// principal from the middleware down to the handlers.
package auth

import "context"

// contextKey is a custom type for context keys. Using an unexported custom
// type prevents collisions with keys defined in other packages.
type contextKey string

const principalContextKey contextKey = "auth_principal"

// NewContextWithPrincipal returns a child context carrying the resolved
// identity. Only the Authenticate middleware should call this.
func NewContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext extracts the authenticated identity from the context.
// The second return value reports whether authentication has run for this
// request.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok
}
