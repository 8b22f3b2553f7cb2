package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/services"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserCreator(ctrl)
	handler := NewCreateUserHandler(mockSvc)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"identifier":"john","password":"pass123"}`,
			mockSetup: func() {
				mockSvc.EXPECT().CreateUser(gomock.Any(), "john", "pass123").
					Return(&models.User{ID: 1, Identifier: "john", PasswordHash: "secret-hash"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			body:         "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
		{
			name: "duplicate identifier",
			body: `{"identifier":"john","password":"pass123"}`,
			mockSetup: func() {
				mockSvc.EXPECT().CreateUser(gomock.Any(), "john", "pass123").
					Return(nil, fmt.Errorf("%w: user \"john\" already exists", services.ErrDuplicateKey))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "validation",
			body: `{"identifier":"","password":""}`,
			mockSetup: func() {
				mockSvc.EXPECT().CreateUser(gomock.Any(), "", "").
					Return(nil, services.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"identifier":"john","password":"pass123"}`,
			mockSetup: func() {
				mockSvc.EXPECT().CreateUser(gomock.Any(), "john", "pass123").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodPost, "/api/v1/users", tt.body, nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			if tt.expectedErr != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			}
			if tt.expectedCode == http.StatusCreated {
				assert.NotContains(t, rr.Body.String(), "secret-hash")
				assert.Contains(t, rr.Body.String(), `"user_identifier":"john"`)
			}
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserGetter(ctrl)
	handler := NewGetUserHandler(mockSvc)
	me := &models.User{ID: 1}

	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/", "", me, map[string]string{"id": "abc"}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().GetUser(gomock.Any(), int64(5)).Return(nil, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/", "", me, map[string]string{"id": "5"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1, Identifier: "me"}, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/", "", me, map[string]string{"id": "1"}))
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.User
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "me", got.Identifier)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserUpdater(ctrl)
	handler := NewUpdateUserHandler(mockSvc)
	me := &models.User{ID: 1}

	t.Run("other user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPatch, "/", `{"identifier":"x"}`, me, map[string]string{"id": "2"}))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		mockSvc.EXPECT().UpdateIdentifier(gomock.Any(), int64(1), "taken").Return(nil, services.ErrDuplicateKey)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPatch, "/", `{"identifier":"taken"}`, me, map[string]string{"id": "1"}))
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("renamed", func(t *testing.T) {
		mockSvc.EXPECT().UpdateIdentifier(gomock.Any(), int64(1), "new").Return(&models.User{ID: 1, Identifier: "new"}, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPatch, "/", `{"identifier":"new"}`, me, map[string]string{"id": "1"}))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserDeleter(ctrl)
	handler := NewDeleteUserHandler(mockSvc)
	me := &models.User{ID: 1}

	t.Run("other user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/", "", me, map[string]string{"id": "2"}))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/", "", nil, map[string]string{"id": "1"}))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		mockSvc.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(true, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/", "", me, map[string]string{"id": "1"}))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"deleted":true}`, rr.Body.String())
	})

	t.Run("already gone", func(t *testing.T) {
		mockSvc.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(false, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/", "", me, map[string]string{"id": "1"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
