package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/services"
)

func TestCreateSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSkillCreator(ctrl)
	handler := NewCreateSkillHandler(mockSvc)
	me := &models.User{ID: 1}

	t.Run("created without description", func(t *testing.T) {
		mockSvc.EXPECT().CreateSkill(gomock.Any(), "linear", "Linear", nil).
			Return(&models.Skill{ID: 1, IDString: "linear", Name: "Linear"}, nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPost, "/", `{"skill_id_string":"linear","name":"Linear"}`, me, nil))
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.Skill
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Nil(t, got.Description)
	})

	t.Run("duplicate", func(t *testing.T) {
		mockSvc.EXPECT().CreateSkill(gomock.Any(), "linear", "Linear", nil).Return(nil, services.ErrDuplicateKey)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodPost, "/", `{"skill_id_string":"linear","name":"Linear"}`, me, nil))
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestListSkillsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSkillLister(ctrl)
	mockSvc.EXPECT().ListSkills(gomock.Any()).Return([]models.Skill{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil)

	rr := httptest.NewRecorder()
	NewListSkillsHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/", "", &models.User{ID: 1}, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.Skill
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestGetSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSkillResolver(ctrl)
	handler := NewGetSkillHandler(mockSvc)

	mockSvc.EXPECT().GetSkillByIDString(gomock.Any(), "missing").Return(nil, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/", "", &models.User{ID: 1}, map[string]string{"skillID": "missing"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	mockSvc.EXPECT().GetSkillByIDString(gomock.Any(), "linear").Return(&models.Skill{ID: 3, IDString: "linear"}, nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(http.MethodGet, "/", "", &models.User{ID: 1}, map[string]string{"skillID": "linear"}))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSkillDeleter(ctrl)
	handler := NewDeleteSkillHandler(mockSvc)
	params := map[string]string{"skillID": "linear"}

	t.Run("referenced by logs", func(t *testing.T) {
		mockSvc.EXPECT().GetSkillByIDString(gomock.Any(), "linear").Return(&models.Skill{ID: 3}, nil)
		mockSvc.EXPECT().DeleteSkill(gomock.Any(), int64(3)).Return(false, services.ErrReferenced)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/", "", &models.User{ID: 1}, params))
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		mockSvc.EXPECT().GetSkillByIDString(gomock.Any(), "linear").Return(&models.Skill{ID: 3}, nil)
		mockSvc.EXPECT().DeleteSkill(gomock.Any(), int64(3)).Return(true, nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodDelete, "/", "", &models.User{ID: 1}, params))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestGetSkillByIDHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSkillGetter(ctrl)
	handler := NewGetSkillByIDHandler(mockSvc)
	me := &models.User{ID: 1}

	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/", "", me, map[string]string{"id": "linear"}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().GetSkill(gomock.Any(), int64(9)).Return(nil, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/", "", me, map[string]string{"id": "9"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().GetSkill(gomock.Any(), int64(3)).Return(&models.Skill{ID: 3, IDString: "linear"}, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/", "", me, map[string]string{"id": "3"}))
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Skill
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "linear", got.IDString)
	})
}
