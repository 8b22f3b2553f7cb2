package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

const questionLogColumns = `id, user_id, skill_id, session_id, question_timestamp, difficulty_presented,
	prompt_used, question_text_generated, expected_answer, user_answer, is_correct,
	response_time_ms, feedback_given`

// QuestionLogRepository handles the append-only question_logs table
type QuestionLogRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewQuestionLogRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *QuestionLogRepository {
	return &QuestionLogRepository{db: db, txGetter: txGetter}
}

// Create appends a log row. in.UserID and in.SkillID must be set.
// The timestamp is assigned by the database.
func (r *QuestionLogRepository) Create(ctx context.Context, in models.QuestionLogInput) (*models.QuestionLog, error) {
	if in.UserID == nil || in.SkillID == nil {
		return nil, fmt.Errorf("question log without user or skill reference")
	}

	query := `
		INSERT INTO question_logs (
			user_id, skill_id, session_id, difficulty_presented, prompt_used,
			question_text_generated, expected_answer, user_answer, is_correct,
			response_time_ms, feedback_given
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + questionLogColumns
	args := []any{
		*in.UserID, *in.SkillID, in.SessionID, in.DifficultyPresented, in.PromptUsed,
		in.QuestionTextGenerated, in.ExpectedAnswer, in.UserAnswer, in.IsCorrect,
		in.ResponseTimeMs, in.FeedbackGiven,
	}

	ex := executor(ctx, r.db, r.txGetter)
	var log models.QuestionLog
	err := sqlx.GetContext(ctx, ex, &log, ex.Rebind(query), args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{*in.UserID, *in.SkillID, in.DifficultyPresented},
		"result", log.ID,
		"error", err,
	)

	if err != nil {
		if classify(err) == violationForeignKey {
			return nil, fmt.Errorf("%w: user id=%d or skill id=%d", ErrNotFound, *in.UserID, *in.SkillID)
		}
		return nil, err
	}
	return &log, nil
}

// Recent returns up to limit logs of the pair, newest first.
func (r *QuestionLogRepository) Recent(ctx context.Context, userID, skillID int64, limit int) ([]models.QuestionLog, error) {
	query := `
		SELECT ` + questionLogColumns + `
		FROM question_logs
		WHERE user_id = ? AND skill_id = ?
		ORDER BY question_timestamp DESC, id DESC
		LIMIT ?`
	args := []any{userID, skillID, limit}

	ex := executor(ctx, r.db, r.txGetter)
	logs := []models.QuestionLog{}
	err := sqlx.SelectContext(ctx, ex, &logs, ex.Rebind(query), args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(logs),
		"error", err,
	)

	return logs, err
}
