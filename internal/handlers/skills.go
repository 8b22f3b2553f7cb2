package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

//go:generate mockgen -source=skills.go -destination=skills_mock.go -package=handlers

// SkillCreator adds skills.
type SkillCreator interface {
	CreateSkill(ctx context.Context, idString, name string, description *string) (*models.Skill, error)
}

// SkillLister lists skills.
type SkillLister interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
}

// SkillGetter reads skills by numeric id.
type SkillGetter interface {
	GetSkill(ctx context.Context, id int64) (*models.Skill, error)
}

// SkillResolver finds a skill by its string identifier.
type SkillResolver interface {
	GetSkillByIDString(ctx context.Context, idString string) (*models.Skill, error)
}

// SkillDeleter resolves and deletes skills.
type SkillDeleter interface {
	SkillResolver
	DeleteSkill(ctx context.Context, id int64) (bool, error)
}

// CreateSkillRequest represents the JSON body for a new skill
// swagger:model CreateSkillRequest
type CreateSkillRequest struct {
	// Unique string identifier
	// required: true
	// default: linear-equations
	IDString string `json:"skill_id_string"`

	// Display name
	// required: true
	// default: Linear Equations
	Name string `json:"name"`

	// Optional description
	Description *string `json:"description,omitempty"`
}

// NewCreateSkillHandler returns an HTTP handler adding a skill.
// @Summary Create a skill
// @Tags skills
// @Accept json
// @Produce json
// @Param request body handlers.CreateSkillRequest true "Skill"
// @Success 201 {object} models.Skill
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Skill id string already exists"
// @Router /skills [post]
func NewCreateSkillHandler(svc SkillCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		skill, err := svc.CreateSkill(r.Context(), req.IDString, req.Name, req.Description)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, skill)
	}
}

// NewListSkillsHandler returns an HTTP handler listing skills by name.
// @Summary List skills
// @Tags skills
// @Produce json
// @Success 200 {array} models.Skill
// @Failure 401 {object} handlers.ErrorResponse
// @Router /skills [get]
func NewListSkillsHandler(svc SkillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := svc.ListSkills(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, skills)
	}
}

// NewGetSkillHandler returns an HTTP handler reading one skill.
// @Summary Get a skill
// @Tags skills
// @Produce json
// @Param skillID path string true "Skill id string"
// @Success 200 {object} models.Skill
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /skills/{skillID} [get]
func NewGetSkillHandler(svc SkillResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill, ok := resolveSkill(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, skill)
	}
}

// NewGetSkillByIDHandler returns an HTTP handler reading one skill by its numeric id.
// @Summary Get a skill by numeric id
// @Tags skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} models.Skill
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /skills/by-id/{id} [get]
func NewGetSkillByIDHandler(svc SkillGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid skill id")
			return
		}

		skill, err := svc.GetSkill(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if skill == nil {
			writeError(w, http.StatusNotFound, "skill not found")
			return
		}

		writeJSON(w, http.StatusOK, skill)
	}
}

// NewDeleteSkillHandler returns an HTTP handler deleting a skill and its progress rows.
// @Summary Delete a skill
// @Description Fails with 409 while question logs still reference the skill.
// @Tags skills
// @Produce json
// @Param skillID path string true "Skill id string"
// @Success 200 {object} handlers.DeleteResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Skill still referenced by logs"
// @Router /skills/{skillID} [delete]
func NewDeleteSkillHandler(svc SkillDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill, ok := resolveSkill(w, r, svc)
		if !ok {
			return
		}

		deleted, err := svc.DeleteSkill(r.Context(), skill.ID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if !deleted {
			writeError(w, http.StatusNotFound, "skill not found")
			return
		}

		writeJSON(w, http.StatusOK, DeleteResponse{Deleted: true})
	}
}

// resolveSkill looks up the {skillID} parameter, answering 404 when unknown.
func resolveSkill(w http.ResponseWriter, r *http.Request, svc SkillResolver) (*models.Skill, bool) {
	skill, err := svc.GetSkillByIDString(r.Context(), chi.URLParam(r, "skillID"))
	if err != nil {
		writeServiceError(w, r, err)
		return nil, false
	}
	if skill == nil {
		writeError(w, http.StatusNotFound, "skill not found")
		return nil, false
	}
	return skill, true
}
