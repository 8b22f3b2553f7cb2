package services

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
}

// dummyHash is compared against when the identifier is unknown so both failures cost the same.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("sigma-dummy-password"), bcrypt.DefaultCost)
	return hash
})

// AuthService checks login credentials.
type AuthService struct {
	reader UserReader
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader) *AuthService {
	return &AuthService{reader: reader}
}

// Authenticate returns the user owning identifier when password matches.
// Unknown identifiers and wrong passwords both fail with ErrInvalidCredentials.
func (svc *AuthService) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := svc.reader.GetByIdentifier(ctx, identifier)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		logger.Log.Infow("invalid credentials", "identifier", identifier)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "identifier", identifier)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
