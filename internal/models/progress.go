package models

import "time"

// DefaultDifficulty is the difficulty assigned to a freshly created progress row.
const DefaultDifficulty = 2

// UserProgress is the adaptive state of one user on one skill.
type UserProgress struct {
	ID                int64      `json:"id" db:"id"`
	UserID            int64      `json:"user_id" db:"user_id"`
	SkillID           int64      `json:"skill_id" db:"skill_id"`
	CurrentDifficulty int        `json:"current_difficulty" db:"current_difficulty"`
	CorrectStreak     int        `json:"correct_streak" db:"correct_streak"`
	IncorrectStreak   int        `json:"incorrect_streak" db:"incorrect_streak"`
	LastInteractionAt *time.Time `json:"last_interaction_at" db:"last_interaction_at"` // nil until first update
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// ProgressUpdate is a partial update of the adaptive state. Nil fields are left unchanged.
type ProgressUpdate struct {
	Difficulty      *int `json:"difficulty,omitempty"`
	CorrectStreak   *int `json:"correct_streak,omitempty"`
	IncorrectStreak *int `json:"incorrect_streak,omitempty"`
}

// Empty reports whether no field is supplied.
func (u ProgressUpdate) Empty() bool {
	return u.Difficulty == nil && u.CorrectStreak == nil && u.IncorrectStreak == nil
}
