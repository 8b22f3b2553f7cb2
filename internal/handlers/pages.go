package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/sessions"
)

//go:generate mockgen -source=pages.go -destination=pages_mock.go -package=handlers

// FlashPopper hands out the pending flash messages of a session.
type FlashPopper interface {
	PopFlashes(ctx context.Context, w http.ResponseWriter, sess *models.Session) ([]models.Flash, error)
}

// NewHealthHandler returns a liveness check answering "OK".
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// NewIndexHandler returns the landing page handler.
func NewIndexHandler(flashes FlashPopper, renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		renderer.Render(w, http.StatusOK, "index.html", PageData{
			Title:   "Home",
			User:    sessions.UserFromContext(ctx),
			Flashes: popFlashes(ctx, w, flashes),
		})
	}
}

func popFlashes(ctx context.Context, w http.ResponseWriter, flashes FlashPopper) []models.Flash {
	sess := sessions.FromContext(ctx)
	if sess == nil {
		return nil
	}
	pending, err := flashes.PopFlashes(ctx, w, sess)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save session", "err", err)
		return sess.Flashes
	}
	return pending
}
