package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/sessions"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserCreator registers users.
type UserCreator interface {
	CreateUser(ctx context.Context, identifier, password string) (*models.User, error)
}

// UserGetter reads users.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// UserUpdater renames users.
type UserUpdater interface {
	UpdateIdentifier(ctx context.Context, id int64, identifier string) (*models.User, error)
}

// UserDeleter deletes users.
type UserDeleter interface {
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// CreateUserRequest represents the JSON body for registration
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Login identifier
	// required: true
	// default: student_1
	Identifier string `json:"identifier"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// UpdateUserRequest represents the JSON body for renaming a user
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Identifier string `json:"identifier"`
}

// DeleteResponse reports a successful deletion
// swagger:model DeleteResponse
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// NewCreateUserHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account. The identifier must be unique; the password is stored as a bcrypt hash.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "Registration request"
// @Success 201 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Identifier already exists"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.CreateUser(r.Context(), req.Identifier, req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewGetUserHandler returns an HTTP handler reading one user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		user, err := svc.GetUser(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler renaming the current user.
// @Summary Change the user identifier
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body handlers.UpdateUserRequest true "New identifier"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the current user"
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Identifier already exists"
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := selfParam(w, r)
		if !ok {
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.UpdateIdentifier(r.Context(), id, req.Identifier)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting the current user with its progress and logs.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.DeleteResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the current user"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := selfParam(w, r)
		if !ok {
			return
		}

		deleted, err := svc.DeleteUser(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if !deleted {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}

		writeJSON(w, http.StatusOK, DeleteResponse{Deleted: true})
	}
}

// selfParam parses the {id} parameter and checks it names the current user.
func selfParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := int64Param(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	if current := sessions.UserFromContext(r.Context()); current == nil || current.ID != id {
		writeError(w, http.StatusForbidden, "forbidden")
		return 0, false
	}
	return id, true
}
