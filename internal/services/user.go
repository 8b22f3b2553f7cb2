package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// UserRepository defines storage operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	Create(ctx context.Context, identifier, passwordHash string) (*models.User, error)
	UpdateIdentifier(ctx context.Context, id int64, identifier string) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserService manages user accounts.
type UserService struct {
	repo UserRepository
	tx   Transactor
}

// NewUserService creates a new UserService instance.
func NewUserService(repo UserRepository, tx Transactor) *UserService {
	return &UserService{repo: repo, tx: tx}
}

// CreateUser registers a user with a bcrypt hash of password.
func (s *UserService) CreateUser(ctx context.Context, identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, fmt.Errorf("%w: identifier and password are required", ErrValidation)
	}
	if len(identifier) > 255 {
		return nil, fmt.Errorf("%w: identifier longer than 255 characters", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	var user *models.User
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByIdentifier(ctx, identifier)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: user %q already exists", ErrDuplicateKey, identifier)
		}

		user, err = s.repo.Create(ctx, identifier, string(hashedPassword))
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to create user", "identifier", identifier, "err", err)
		return nil, err
	}

	return user, nil
}

// GetUser returns the user or nil.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetUserByIdentifier returns the user or nil.
func (s *UserService) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return s.repo.GetByIdentifier(ctx, identifier)
}

// UpdateIdentifier renames a user. Returns nil when the user does not exist.
func (s *UserService) UpdateIdentifier(ctx context.Context, id int64, identifier string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", ErrValidation)
	}

	var user *models.User
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil || current == nil {
			return err
		}

		owner, err := s.repo.GetByIdentifier(ctx, identifier)
		if err != nil {
			return err
		}
		if owner != nil && owner.ID != id {
			return fmt.Errorf("%w: user %q already exists", ErrDuplicateKey, identifier)
		}

		user, err = s.repo.UpdateIdentifier(ctx, id, identifier)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to update user identifier", "id", id, "identifier", identifier, "err", err)
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the user together with its progress and logs.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
	}
	return deleted, err
}
