package sessions

import (
	"context"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

type sessionKey struct{}

type userKey struct{}

// WithSession stores the request session in the context
func WithSession(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// FromContext returns the request session or nil.
func FromContext(ctx context.Context) *models.Session {
	sess, _ := ctx.Value(sessionKey{}).(*models.Session)
	return sess
}

// WithUser stores the authenticated user in the context
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated user, nil for anonymous requests.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey{}).(*models.User)
	return user
}
