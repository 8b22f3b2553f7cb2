package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/services"
)

func TestCreateQuestionLogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockQuestionLogCreator(ctrl)
	handler := NewCreateQuestionLogHandler(svc)
	me := &models.User{ID: 7}

	t.Run("user taken from session", func(t *testing.T) {
		svc.EXPECT().CreateLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in models.QuestionLogInput) (*models.QuestionLog, error) {
				require.NotNil(t, in.UserID)
				assert.Equal(t, int64(7), *in.UserID)
				require.NotNil(t, in.SkillID)
				assert.Equal(t, int64(3), *in.SkillID)
				return &models.QuestionLog{ID: 1, UserID: 7, SkillID: 3}, nil
			})

		body := `{"user_id":99,"skill_id":3,"difficulty_presented":2,"question_text_generated":"2+2?"}`
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPost, "/", body, me, nil))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("missing skill", func(t *testing.T) {
		svc.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(nil, services.ErrValidation)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPost, "/", `{"question_text_generated":"q"}`, me, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown skill", func(t *testing.T) {
		svc.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(nil, services.ErrNotFound)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPost, "/", `{"skill_id":404,"question_text_generated":"q"}`, me, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRecentQuestionLogsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	skills := NewMockSkillResolver(ctrl)
	svc := NewMockQuestionLogReader(ctrl)
	handler := NewRecentQuestionLogsHandler(skills, svc)
	me := &models.User{ID: 7}
	params := map[string]string{"skillID": "linear"}

	t.Run("default limit", func(t *testing.T) {
		skills.EXPECT().GetSkillByIDString(gomock.Any(), "linear").Return(&models.Skill{ID: 3}, nil)
		svc.EXPECT().RecentLogs(gomock.Any(), int64(7), int64(3), 0).Return([]models.QuestionLog{}, nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/api/v1/logs/linear", "", me, params))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("explicit limit", func(t *testing.T) {
		skills.EXPECT().GetSkillByIDString(gomock.Any(), "linear").Return(&models.Skill{ID: 3}, nil)
		svc.EXPECT().RecentLogs(gomock.Any(), int64(7), int64(3), 5).Return([]models.QuestionLog{{ID: 1}}, nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/api/v1/logs/linear?limit=5", "", me, params))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/api/v1/logs/linear?limit=abc", "", me, params))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
