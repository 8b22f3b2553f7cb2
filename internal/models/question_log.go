package models

import "time"

// QuestionLog is an append-only record of one presented question and its outcome.
type QuestionLog struct {
	ID                    int64     `json:"id" db:"id"`
	UserID                int64     `json:"user_id" db:"user_id"`
	SkillID               int64     `json:"skill_id" db:"skill_id"`
	SessionID             *string   `json:"session_id" db:"session_id"`
	QuestionTimestamp     time.Time `json:"question_timestamp" db:"question_timestamp"`
	DifficultyPresented   int       `json:"difficulty_presented" db:"difficulty_presented"`
	PromptUsed            *string   `json:"prompt_used" db:"prompt_used"`
	QuestionTextGenerated string    `json:"question_text_generated" db:"question_text_generated"`
	ExpectedAnswer        *string   `json:"expected_answer" db:"expected_answer"`
	UserAnswer            *string   `json:"user_answer" db:"user_answer"`
	IsCorrect             *bool     `json:"is_correct" db:"is_correct"`
	ResponseTimeMs        *int      `json:"response_time_ms" db:"response_time_ms"`
	FeedbackGiven         *string   `json:"feedback_given" db:"feedback_given"`
}

// QuestionLogInput carries the fields of a new QuestionLog.
// UserID and SkillID are pointers so that a missing reference can be told apart from zero.
type QuestionLogInput struct {
	UserID                *int64  `json:"user_id"`
	SkillID               *int64  `json:"skill_id"`
	SessionID             *string `json:"session_id,omitempty"`
	DifficultyPresented   int     `json:"difficulty_presented"`
	PromptUsed            *string `json:"prompt_used,omitempty"`
	QuestionTextGenerated string  `json:"question_text_generated"`
	ExpectedAnswer        *string `json:"expected_answer,omitempty"`
	UserAnswer            *string `json:"user_answer,omitempty"`
	IsCorrect             *bool   `json:"is_correct,omitempty"`
	ResponseTimeMs        *int    `json:"response_time_ms,omitempty"`
	FeedbackGiven         *string `json:"feedback_given,omitempty"`
}
