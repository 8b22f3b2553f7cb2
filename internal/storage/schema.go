package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		user_identifier VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(256) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id BIGSERIAL PRIMARY KEY,
		skill_id_string VARCHAR(100) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		skill_id BIGINT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		current_difficulty INTEGER NOT NULL DEFAULT 2,
		correct_streak INTEGER NOT NULL DEFAULT 0 CHECK (correct_streak >= 0),
		incorrect_streak INTEGER NOT NULL DEFAULT 0 CHECK (incorrect_streak >= 0),
		last_interaction_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT uq_user_skill UNIQUE (user_id, skill_id)
	)`,
	`CREATE TABLE IF NOT EXISTS question_logs (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		skill_id BIGINT NOT NULL REFERENCES skills(id) ON DELETE RESTRICT,
		session_id VARCHAR(100),
		question_timestamp TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
		difficulty_presented INTEGER NOT NULL,
		prompt_used TEXT,
		question_text_generated TEXT NOT NULL,
		expected_answer VARCHAR(255),
		user_answer VARCHAR(255),
		is_correct BOOLEAN,
		response_time_ms INTEGER,
		feedback_given TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS ix_question_logs_user_skill_time
		ON question_logs (user_id, skill_id, question_timestamp)`,
	`CREATE INDEX IF NOT EXISTS ix_question_logs_session_id ON question_logs (session_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_identifier VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(256) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		skill_id_string VARCHAR(100) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		skill_id INTEGER NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		current_difficulty INTEGER NOT NULL DEFAULT 2,
		correct_streak INTEGER NOT NULL DEFAULT 0 CHECK (correct_streak >= 0),
		incorrect_streak INTEGER NOT NULL DEFAULT 0 CHECK (incorrect_streak >= 0),
		last_interaction_at DATETIME,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT uq_user_skill UNIQUE (user_id, skill_id)
	)`,
	// skill_id keeps the default NO ACTION: SQLite reports RESTRICT as a trigger
	// constraint, NO ACTION as SQLITE_CONSTRAINT_FOREIGNKEY.
	`CREATE TABLE IF NOT EXISTS question_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		skill_id INTEGER NOT NULL REFERENCES skills(id),
		session_id VARCHAR(100),
		question_timestamp DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now')),
		difficulty_presented INTEGER NOT NULL,
		prompt_used TEXT,
		question_text_generated TEXT NOT NULL,
		expected_answer VARCHAR(255),
		user_answer VARCHAR(255),
		is_correct BOOLEAN,
		response_time_ms INTEGER,
		feedback_given TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS ix_question_logs_user_skill_time
		ON question_logs (user_id, skill_id, question_timestamp)`,
	`CREATE INDEX IF NOT EXISTS ix_question_logs_session_id ON question_logs (session_id)`,
}

// Migrate creates the schema if it does not exist yet. It is safe to run on every start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var stmts []string
	switch db.DriverName() {
	case DriverPostgres:
		stmts = postgresSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %s: %w", summarize(stmt), err)
		}
	}

	logger.Log.Infow("schema ready", "driver", db.DriverName(), "statements", len(stmts))
	return nil
}

// summarize returns the statement on one line, cut to a readable length.
func summarize(stmt string) string {
	s := strings.Join(strings.Fields(stmt), " ")
	if len(s) > 60 {
		return s[:60] + "..."
	}
	return s
}
