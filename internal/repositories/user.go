package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

const userColumns = `id, user_identifier, password_hash, created_at, updated_at`

// UserRepository handles user reads and writes
type UserRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user or nil when there is no such id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.getOne(ctx, query, id)
}

// GetByIdentifier returns the user or nil when the identifier is unknown.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_identifier = ?`
	return r.getOne(ctx, query, identifier)
}

// Create inserts a user and returns it with its id and timestamps.
func (r *UserRepository) Create(ctx context.Context, identifier, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (user_identifier, password_hash, created_at, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING ` + userColumns

	ex := executor(ctx, r.db, r.txGetter)
	var user models.User
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), identifier, passwordHash)

	// Password hash stays out of the log
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{identifier},
		"result", user.ID,
		"error", err,
	)

	if err != nil {
		if classify(err) == violationUnique {
			return nil, fmt.Errorf("%w: user identifier %q already exists", ErrDuplicateKey, identifier)
		}
		return nil, err
	}
	return &user, nil
}

// UpdateIdentifier changes the identifier of user id. Returns nil when the user does not exist.
func (r *UserRepository) UpdateIdentifier(ctx context.Context, id int64, identifier string) (*models.User, error) {
	query := `
		UPDATE users
		SET user_identifier = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING ` + userColumns

	ex := executor(ctx, r.db, r.txGetter)
	var user models.User
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), identifier, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{identifier, id},
		"result", user.ID,
		"error", err,
	)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case classify(err) == violationUnique:
		return nil, fmt.Errorf("%w: user identifier %q already exists", ErrDuplicateKey, identifier)
	case err != nil:
		return nil, err
	}
	return &user, nil
}

// Delete removes the user together with its progress and logs. Reports whether a row was deleted.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = ?`

	ex := executor(ctx, r.db, r.txGetter)
	res, err := ex.ExecContext(ctx, ex.Rebind(query), id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	ex := executor(ctx, r.db, r.txGetter)
	var user models.User
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), args...)

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", user.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
