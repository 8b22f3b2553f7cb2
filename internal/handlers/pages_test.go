package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/sessions"
)

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestIndexHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer, err := NewRenderer()
	require.NoError(t, err)

	mockFlashes := NewMockFlashPopper(ctrl)
	handler := NewIndexHandler(mockFlashes, renderer)

	t.Run("anonymous", func(t *testing.T) {
		sess := &models.Session{ID: "anon"}
		mockFlashes.EXPECT().PopFlashes(gomock.Any(), gomock.Any(), sess).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(sessions.WithSession(req.Context(), sess))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Hello World from Sigma AI!")
		assert.Contains(t, body, "Foundation setup complete.")
		assert.Contains(t, body, `href="/auth/login"`)
	})

	t.Run("logged in with flash", func(t *testing.T) {
		sess := &models.Session{ID: "s", UserID: 2}
		mockFlashes.EXPECT().PopFlashes(gomock.Any(), gomock.Any(), sess).
			Return([]models.Flash{{Category: models.FlashSuccess, Message: MsgLoginSuccessful}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := sessions.WithSession(req.Context(), sess)
		ctx = sessions.WithUser(ctx, &models.User{ID: 2, Identifier: "ann"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req.WithContext(ctx))

		body := rr.Body.String()
		assert.Contains(t, body, "Logged in as ann")
		assert.Contains(t, body, MsgLoginSuccessful)
		assert.Contains(t, body, `href="/auth/logout"`)
	})

	t.Run("flash store failure still renders", func(t *testing.T) {
		sess := &models.Session{ID: "s", Flashes: []models.Flash{{Category: models.FlashInfo, Message: "pending"}}}
		mockFlashes.EXPECT().PopFlashes(gomock.Any(), gomock.Any(), sess).Return(nil, errors.New("redis down"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(sessions.WithSession(req.Context(), sess))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "pending")
	})
}
