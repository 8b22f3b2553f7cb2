package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/sessions"
)

// newRequest builds a request carrying chi URL params and, when user is not nil, a logged-in user.
func newRequest(method, target, body string, user *models.User, params map[string]string) *http.Request {
	req, _ := http.NewRequest(method, target, strings.NewReader(body))

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if user != nil {
		ctx = sessions.WithUser(ctx, user)
	}
	return req.WithContext(ctx)
}
