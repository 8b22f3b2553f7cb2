package models

import "time"

// Flash categories
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Session is a server-side session record. UserID 0 means anonymous.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Remember  bool      `json:"remember"`
	Flashes   []Flash   `json:"flashes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Authenticated reports whether a user is bound to the session.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}
