package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/sessions"
)

//go:generate mockgen -source=question_logs.go -destination=question_logs_mock.go -package=handlers

// QuestionLogCreator stores question logs.
type QuestionLogCreator interface {
	CreateLog(ctx context.Context, in models.QuestionLogInput) (*models.QuestionLog, error)
}

// QuestionLogReader lists recent question logs.
type QuestionLogReader interface {
	RecentLogs(ctx context.Context, userID, skillID int64, limit int) ([]models.QuestionLog, error)
}

// NewCreateQuestionLogHandler returns an HTTP handler logging a presented question for the current user.
// @Summary Log a question
// @Description user_id is taken from the session; skill_id is required.
// @Tags logs
// @Accept json
// @Produce json
// @Param request body models.QuestionLogInput true "Question log"
// @Success 201 {object} models.QuestionLog
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown skill"
// @Router /logs [post]
func NewCreateQuestionLogHandler(svc QuestionLogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.QuestionLogInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user := sessions.UserFromContext(r.Context())
		in.UserID = &user.ID

		log, err := svc.CreateLog(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, log)
	}
}

// NewRecentQuestionLogsHandler returns an HTTP handler with the current user's latest logs on a skill.
// @Summary Recent question logs
// @Tags logs
// @Produce json
// @Param skillID path string true "Skill id string"
// @Param limit query int false "Maximum number of logs" default(10)
// @Success 200 {array} models.QuestionLog
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /logs/{skillID} [get]
func NewRecentQuestionLogsHandler(skills SkillResolver, svc QuestionLogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > 100 {
				writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
				return
			}
			limit = n
		}

		skill, ok := resolveSkill(w, r, skills)
		if !ok {
			return
		}
		user := sessions.UserFromContext(r.Context())

		logs, err := svc.RecentLogs(r.Context(), user.ID, skill.ID, limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, logs)
	}
}
