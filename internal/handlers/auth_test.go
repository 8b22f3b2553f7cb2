package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/services"
	"github.com/sbilibin2017/sigma-tutor/internal/sessions"
)

func loginRequest(form url.Values, sess *models.Session) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req.WithContext(sessions.WithSession(req.Context(), sess))
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{"", "/"},
		{"/auth/profile", "/auth/profile"},
		{"/api/v1/skills?x=1", "/api/v1/skills?x=1"},
		{"//evil.example", "/"},
		{"/\\evil.example", "/"},
		{"https://evil.example/", "/"},
		{"profile", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			assert.Equal(t, tt.want, safeNext(tt.next))
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer, err := NewRenderer()
	require.NoError(t, err)

	mockAuth := NewMockAuthenticator(ctrl)
	mockSM := NewMockLoginManager(ctrl)
	handler := NewLoginHandler(mockAuth, mockSM, renderer)

	t.Run("invalid credentials", func(t *testing.T) {
		sess := &models.Session{ID: "anon"}
		mockAuth.EXPECT().Authenticate(gomock.Any(), "john", "wrong").Return(nil, services.ErrInvalidCredentials)
		mockSM.EXPECT().PopFlashes(gomock.Any(), gomock.Any(), sess).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, loginRequest(url.Values{"identifier": {"john"}, "password": {"wrong"}}, sess))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), MsgInvalidCredentials)
		assert.Contains(t, rr.Body.String(), `value="john"`)
		assert.Empty(t, rr.Header().Get("Set-Cookie"))
	})

	t.Run("success redirects to next", func(t *testing.T) {
		sess := &models.Session{ID: "anon"}
		mockAuth.EXPECT().Authenticate(gomock.Any(), "john", "pass").Return(&models.User{ID: 4}, nil)
		mockSM.EXPECT().Login(gomock.Any(), gomock.Any(), sess, int64(4), true).Return(&models.Session{ID: "new", UserID: 4}, nil)

		form := url.Values{"identifier": {"john"}, "password": {"pass"}, "remember": {"on"}, "next": {"/auth/profile"}}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, loginRequest(form, sess))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/auth/profile", rr.Header().Get("Location"))
		require.Len(t, sess.Flashes, 1)
		assert.Equal(t, MsgLoginSuccessful, sess.Flashes[0].Message)
	})

	t.Run("external next ignored", func(t *testing.T) {
		sess := &models.Session{ID: "anon"}
		mockAuth.EXPECT().Authenticate(gomock.Any(), "john", "pass").Return(&models.User{ID: 4}, nil)
		mockSM.EXPECT().Login(gomock.Any(), gomock.Any(), sess, int64(4), false).Return(&models.Session{ID: "new", UserID: 4}, nil)

		form := url.Values{"identifier": {"john"}, "password": {"pass"}, "next": {"https://evil.example"}}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, loginRequest(form, sess))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("authenticator failure", func(t *testing.T) {
		sess := &models.Session{ID: "anon"}
		mockAuth.EXPECT().Authenticate(gomock.Any(), "john", "pass").Return(nil, errors.New("database error"))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, loginRequest(url.Values{"identifier": {"john"}, "password": {"pass"}}, sess))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("already logged in", func(t *testing.T) {
		req := loginRequest(url.Values{}, &models.Session{ID: "s", UserID: 1})
		req = req.WithContext(sessions.WithUser(req.Context(), &models.User{ID: 1}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})
}

func TestLoginPageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer, err := NewRenderer()
	require.NoError(t, err)

	mockSM := NewMockLoginManager(ctrl)
	sess := &models.Session{ID: "anon"}
	mockSM.EXPECT().PopFlashes(gomock.Any(), gomock.Any(), sess).
		Return([]models.Flash{{Category: models.FlashInfo, Message: "Please log in to access this page."}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/login?next=%2Fauth%2Fprofile", nil)
	req = req.WithContext(sessions.WithSession(req.Context(), sess))
	rr := httptest.NewRecorder()
	NewLoginPageHandler(mockSM, renderer).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<h1>Login</h1>")
	assert.Contains(t, body, `name="next" value="/auth/profile"`)
	assert.Contains(t, body, "Please log in to access this page.")
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSM := NewMockLoginManager(ctrl)
	sess := &models.Session{ID: "s", UserID: 1}
	fresh := &models.Session{ID: "fresh"}

	gomock.InOrder(
		mockSM.EXPECT().Logout(gomock.Any(), gomock.Any(), sess).Return(fresh, nil),
		mockSM.EXPECT().Flash(gomock.Any(), gomock.Any(), fresh, models.FlashInfo, MsgLoggedOut).Return(nil),
	)

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req = req.WithContext(sessions.WithSession(req.Context(), sess))
	rr := httptest.NewRecorder()
	NewLogoutHandler(mockSM).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestProfileHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req = req.WithContext(sessions.WithUser(req.Context(), &models.User{ID: 9, Identifier: "<b>ann</b>"}))
	rr := httptest.NewRecorder()
	NewProfileHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "Hello, <b>ann</b>! Your user ID is 9.", rr.Body.String())
}
