package models

import "time"

// Skill represents a practicable skill
type Skill struct {
	ID          int64     `json:"id" db:"id"`
	IDString    string    `json:"skill_id_string" db:"skill_id_string"` // Unique string identifier
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"` // Optional
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
