package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/sessions"
)

//go:generate mockgen -source=progress.go -destination=progress_mock.go -package=handlers

// ProgressGetter reads the progress of a pair, optionally creating it when absent.
type ProgressGetter interface {
	GetOrCreate(ctx context.Context, userID, skillID int64, defaultDifficulty int) (*models.UserProgress, error)
	Get(ctx context.Context, userID, skillID int64) (*models.UserProgress, error)
}

// ProgressUpdater applies partial progress updates.
type ProgressUpdater interface {
	UpdateState(ctx context.Context, userID, skillID int64, upd models.ProgressUpdate) (*models.UserProgress, error)
}

// NewGetProgressHandler returns an HTTP handler with the current user's progress on a skill.
// @Summary Get or create progress
// @Description Returns the progress of the current user on the skill, creating it with the default difficulty.
// @Description With create=false a missing row is reported as 404 instead.
// @Tags progress
// @Produce json
// @Param skillID path string true "Skill id string"
// @Param create query bool false "Create the row when absent" default(true)
// @Success 200 {object} models.UserProgress
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Concurrent creation"
// @Router /progress/{skillID} [get]
func NewGetProgressHandler(skills SkillResolver, svc ProgressGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		create := true
		if raw := r.URL.Query().Get("create"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "create must be a boolean")
				return
			}
			create = v
		}

		skill, ok := resolveSkill(w, r, skills)
		if !ok {
			return
		}
		user := sessions.UserFromContext(r.Context())

		var progress *models.UserProgress
		var err error
		if create {
			progress, err = svc.GetOrCreate(r.Context(), user.ID, skill.ID, models.DefaultDifficulty)
		} else {
			progress, err = svc.Get(r.Context(), user.ID, skill.ID)
		}
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if progress == nil {
			writeError(w, http.StatusNotFound, "progress not found")
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}

// NewUpdateProgressHandler returns an HTTP handler applying a partial progress update.
// @Summary Update progress
// @Description Only supplied fields change; the last interaction time is refreshed.
// @Tags progress
// @Accept json
// @Produce json
// @Param skillID path string true "Skill id string"
// @Param request body models.ProgressUpdate true "Fields to change"
// @Success 200 {object} models.UserProgress
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /progress/{skillID} [patch]
func NewUpdateProgressHandler(skills SkillResolver, svc ProgressUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var upd models.ProgressUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		skill, ok := resolveSkill(w, r, skills)
		if !ok {
			return
		}
		user := sessions.UserFromContext(r.Context())

		progress, err := svc.UpdateState(r.Context(), user.ID, skill.ID, upd)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if progress == nil {
			writeError(w, http.StatusNotFound, "progress not found")
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}
