package models

// EventQuestionLogged names the event emitted after a question log is stored.
const EventQuestionLogged = "question_logged"

// QuestionLogEvent represents a question log event published to Kafka
type QuestionLogEvent struct {
	EventID   string      `json:"event_id"`  // Unique event identifier
	Event     string      `json:"event"`     // Event name
	Timestamp int64       `json:"timestamp"` // Unix timestamp of publication
	Log       QuestionLog `json:"log"`       // Stored record
}
