package http

import (
	"context"

	"ecowaste-backend/internal/security"
)

type contextKey struct{}

var claimsKey contextKey

func contextWithClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// claimsFromContext returns the authenticated user's claims, as resolved by
// the auth middleware.
func claimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.UserClaims)
	return claims, ok
}
