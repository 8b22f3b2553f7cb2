package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/sessions"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// LoginPath is where anonymous visitors of protected pages are sent.
const LoginPath = "/auth/login"

// LoginRequiredMessage is flashed when a protected page redirects to login.
const LoginRequiredMessage = "Please log in to access this page."

// SessionLoader resolves the session of a request.
type SessionLoader interface {
	Load(ctx context.Context, r *http.Request) (*models.Session, error)
}

// UserLoader loads the user bound to a session.
type UserLoader interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// Flasher queues a flash message on the session.
type Flasher interface {
	Flash(ctx context.Context, w http.ResponseWriter, sess *models.Session, category, message string) error
}

// SessionMiddleware loads the session and its user into the request context.
// A session naming a user that no longer exists is treated as anonymous.
func SessionMiddleware(loader SessionLoader, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			sess, err := loader.Load(ctx, r)
			if err != nil {
				log.Errorw("failed to load session", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			ctx = sessions.WithSession(ctx, sess)

			if sess.Authenticated() {
				user, err := users.GetUser(ctx, sess.UserID)
				if err != nil {
					log.Errorw("failed to load session user", "user_id", sess.UserID, "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				if user == nil {
					log.Infow("session user no longer exists", "user_id", sess.UserID)
					sess.UserID = 0
				} else {
					ctx = sessions.WithUser(ctx, user)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin redirects anonymous visitors to the login page, remembering the requested URL.
func RequireLogin(flasher Flasher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if sessions.UserFromContext(ctx) != nil {
				next.ServeHTTP(w, r)
				return
			}

			if sess := sessions.FromContext(ctx); sess != nil {
				if err := flasher.Flash(ctx, w, sess, models.FlashInfo, LoginRequiredMessage); err != nil {
					logger.FromContext(ctx).Errorw("failed to save session", "err", err)
				}
			}

			target := LoginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusFound)
		})
	}
}

// RequireAPIAuth answers 401 to anonymous API calls.
func RequireAPIAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessions.UserFromContext(r.Context()) == nil {
			logger.FromContext(r.Context()).Infow("authorization failed", "uri", r.RequestURI)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
