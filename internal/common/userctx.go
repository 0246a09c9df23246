package common

import (
	"context"
)

// UserContext holds the authenticated user's identity resolved from the
// bearer token. When absent (nil), the request is unauthenticated.
type UserContext struct {
	Phone string
	Name  string
}

type contextKey int

const userContextKey contextKey = iota

// WithUserContext stores a UserContext in the request context.
func WithUserContext(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, uc)
}

// UserContextFromContext retrieves the UserContext from context, or nil if absent.
func UserContextFromContext(ctx context.Context) *UserContext {
	uc, _ := ctx.Value(userContextKey).(*UserContext)
	return uc
}

// ResolveUserID returns the authenticated user's identity from context, or
// empty string when the request is unauthenticated. Portfolios are keyed by
// this value.
func ResolveUserID(ctx context.Context) string {
	if uc := UserContextFromContext(ctx); uc != nil {
		return uc.Phone
	}
	return ""
}
