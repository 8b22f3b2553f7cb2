package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/sigma-tutor/internal/repositories"
)

// Error variables
var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDuplicateKey = repositories.ErrDuplicateKey
	ErrNotFound     = repositories.ErrNotFound
	ErrReferenced   = repositories.ErrReferenced
)

// Transactor runs fn inside a database transaction carried by ctx.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
