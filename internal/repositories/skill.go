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

const skillColumns = `id, skill_id_string, name, description, created_at`

// SkillRepository handles skill reads and writes
type SkillRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSkillRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SkillRepository {
	return &SkillRepository{db: db, txGetter: txGetter}
}

// GetByID returns the skill or nil.
func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	return r.getOne(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = ?`, id)
}

// GetByIDString returns the skill with the given string identifier or nil.
func (r *SkillRepository) GetByIDString(ctx context.Context, idString string) (*models.Skill, error) {
	return r.getOne(ctx, `SELECT `+skillColumns+` FROM skills WHERE skill_id_string = ?`, idString)
}

// List returns all skills ordered by name.
func (r *SkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY name, id`

	ex := executor(ctx, r.db, r.txGetter)
	skills := []models.Skill{}
	err := sqlx.SelectContext(ctx, ex, &skills, query)

	logger.Log.Infow(
		"query", query,
		"args", []any{},
		"result", len(skills),
		"error", err,
	)

	return skills, err
}

// Create inserts a skill. Description may be nil.
func (r *SkillRepository) Create(ctx context.Context, idString, name string, description *string) (*models.Skill, error) {
	query := `
		INSERT INTO skills (skill_id_string, name, description, created_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		RETURNING ` + skillColumns
	args := []any{idString, name, description}

	ex := executor(ctx, r.db, r.txGetter)
	var skill models.Skill
	err := sqlx.GetContext(ctx, ex, &skill, ex.Rebind(query), args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", skill.ID,
		"error", err,
	)

	if err != nil {
		if classify(err) == violationUnique {
			return nil, fmt.Errorf("%w: skill id string %q already exists", ErrDuplicateKey, idString)
		}
		return nil, err
	}
	return &skill, nil
}

// Delete removes the skill and its progress rows. Question logs are kept, so a skill
// that still has logs cannot be deleted and ErrReferenced is returned.
func (r *SkillRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM skills WHERE id = ?`

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
		if classify(err) == violationForeignKey {
			return false, fmt.Errorf("%w: skill id=%d has question logs", ErrReferenced, id)
		}
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *SkillRepository) getOne(ctx context.Context, query string, args ...any) (*models.Skill, error) {
	ex := executor(ctx, r.db, r.txGetter)
	var skill models.Skill
	err := sqlx.GetContext(ctx, ex, &skill, ex.Rebind(query), args...)

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", skill.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}
