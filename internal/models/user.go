package models

import "time"

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                           // Primary key
	Identifier   string    `json:"user_identifier" db:"user_identifier"` // Unique login identifier
	PasswordHash string    `json:"-" db:"password_hash"`                 // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}
