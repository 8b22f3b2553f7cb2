package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

const progressColumns = `id, user_id, skill_id, current_difficulty, correct_streak, incorrect_streak,
	last_interaction_at, created_at, updated_at`

// ProgressRepository handles user_progress rows
type ProgressRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProgressRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProgressRepository {
	return &ProgressRepository{db: db, txGetter: txGetter}
}

// Get returns the progress row of the (user, skill) pair or nil.
func (r *ProgressRepository) Get(ctx context.Context, userID, skillID int64) (*models.UserProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM user_progress WHERE user_id = ? AND skill_id = ?`
	args := []any{userID, skillID}

	ex := executor(ctx, r.db, r.txGetter)
	var progress models.UserProgress
	err := sqlx.GetContext(ctx, ex, &progress, ex.Rebind(query), args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", progress.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Create inserts a progress row with zero streaks.
// A second row for the same pair fails with ErrDuplicateKey; a missing user or skill with ErrNotFound.
func (r *ProgressRepository) Create(ctx context.Context, userID, skillID int64, difficulty int) (*models.UserProgress, error) {
	query := `
		INSERT INTO user_progress (user_id, skill_id, current_difficulty, correct_streak, incorrect_streak, created_at, updated_at)
		VALUES (?, ?, ?, 0, 0, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING ` + progressColumns
	args := []any{userID, skillID, difficulty}

	ex := executor(ctx, r.db, r.txGetter)
	var progress models.UserProgress
	err := sqlx.GetContext(ctx, ex, &progress, ex.Rebind(query), args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", progress.ID,
		"error", err,
	)

	if err != nil {
		switch classify(err) {
		case violationUnique:
			return nil, fmt.Errorf("%w: progress for user id=%d and skill id=%d already exists", ErrDuplicateKey, userID, skillID)
		case violationForeignKey:
			return nil, fmt.Errorf("%w: user id=%d or skill id=%d", ErrNotFound, userID, skillID)
		}
		return nil, err
	}
	return &progress, nil
}

// UpdateState applies the supplied fields of upd in a single statement and stamps
// last_interaction_at with at. Returns nil when the pair has no progress row.
func (r *ProgressRepository) UpdateState(ctx context.Context, userID, skillID int64, upd models.ProgressUpdate, at time.Time) (*models.UserProgress, error) {
	query := `
		UPDATE user_progress
		SET current_difficulty = COALESCE(?, current_difficulty),
		    correct_streak = COALESCE(?, correct_streak),
		    incorrect_streak = COALESCE(?, incorrect_streak),
		    last_interaction_at = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND skill_id = ?
		RETURNING ` + progressColumns
	args := []any{upd.Difficulty, upd.CorrectStreak, upd.IncorrectStreak, at.UTC(), userID, skillID}

	ex := executor(ctx, r.db, r.txGetter)
	var progress models.UserProgress
	err := sqlx.GetContext(ctx, ex, &progress, ex.Rebind(query), args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, skillID},
		"result", progress.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
