package services

import (
	"context"

	"carhub/internal/domain/user"
)

type ctxKey int

const userCtxKey ctxKey = iota

// WithUser attaches the authenticated account to the request context.
func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, userCtxKey, u)
}

// UserFromContext returns the account resolved by the auth middleware.
func UserFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userCtxKey).(user.User)
	return u, ok
}
