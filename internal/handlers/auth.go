package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/services"
	"github.com/sbilibin2017/sigma-tutor/internal/sessions"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// User-facing messages of the login flow.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgLoginSuccessful    = "Login successful!"
	MsgLoggedOut          = "You have been logged out."
)

// Authenticator checks login credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, password string) (*models.User, error)
}

// LoginManager binds and releases the session user.
type LoginManager interface {
	FlashPopper
	Login(ctx context.Context, w http.ResponseWriter, sess *models.Session, userID int64, remember bool) (*models.Session, error)
	Logout(ctx context.Context, w http.ResponseWriter, sess *models.Session) (*models.Session, error)
	Flash(ctx context.Context, w http.ResponseWriter, sess *models.Session, category, message string) error
}

// NewLoginPageHandler renders the login form. Logged-in users go to the landing page.
func NewLoginPageHandler(sm LoginManager, renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessions.UserFromContext(ctx) != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		renderer.Render(w, http.StatusOK, "login.html", PageData{
			Title:   "Login",
			Flashes: popFlashes(ctx, w, sm),
			Next:    r.URL.Query().Get("next"),
		})
	}
}

// NewLoginHandler handles the login form submission.
// Success rotates the session, binds the user and redirects to a local next or "/".
// Failure re-renders the form with the same message for unknown users and wrong passwords.
func NewLoginHandler(auth Authenticator, sm LoginManager, renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		if sessions.UserFromContext(ctx) != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		identifier := r.PostForm.Get("identifier")
		password := r.PostForm.Get("password")
		remember := r.PostForm.Get("remember") == "on"
		next := r.PostForm.Get("next")
		if next == "" {
			next = r.URL.Query().Get("next")
		}

		sess := sessions.FromContext(ctx)
		if sess == nil {
			log.Errorw("login without session middleware")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		user, err := auth.Authenticate(ctx, identifier, password)
		if err != nil {
			if !errors.Is(err, services.ErrInvalidCredentials) {
				log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			flashes := append(popFlashes(ctx, w, sm), models.Flash{Category: models.FlashError, Message: MsgInvalidCredentials})
			renderer.Render(w, http.StatusOK, "login.html", PageData{
				Title:      "Login",
				Flashes:    flashes,
				Next:       next,
				Identifier: identifier,
			})
			return
		}

		sessions.AddFlash(sess, models.FlashSuccess, MsgLoginSuccessful)
		if _, err := sm.Login(ctx, w, sess, user.ID, remember); err != nil {
			log.Errorw("failed to start session", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		log.Infow("user logged in", "user_id", user.ID, "remember", remember)
		http.Redirect(w, r, safeNext(next), http.StatusFound)
	}
}

// NewLogoutHandler clears the session binding and redirects to the landing page.
func NewLogoutHandler(sm LoginManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		fresh, err := sm.Logout(ctx, w, sessions.FromContext(ctx))
		if err != nil {
			log.Errorw("failed to end session", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if err := sm.Flash(ctx, w, fresh, models.FlashInfo, MsgLoggedOut); err != nil {
			log.Errorw("failed to save session", "err", err)
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// NewProfileHandler greets the logged-in user.
func NewProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := sessions.UserFromContext(r.Context())
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Hello, %s! Your user ID is %d.", user.Identifier, user.ID)
	}
}

// safeNext returns next when it is a path on this site, otherwise "/".
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
