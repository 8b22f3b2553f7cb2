package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

//go:generate mockgen -source=question_log.go -destination=question_log_mock.go -package=services

// DefaultRecentLogs is the number of logs returned when no limit is given.
const DefaultRecentLogs = 10

// QuestionLogRepository defines storage operations for question logs.
type QuestionLogRepository interface {
	Create(ctx context.Context, in models.QuestionLogInput) (*models.QuestionLog, error)
	Recent(ctx context.Context, userID, skillID int64, limit int) ([]models.QuestionLog, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// QuestionLogService records presented questions and publishes them.
type QuestionLogService struct {
	repo        QuestionLogRepository
	kafkaWriter KafkaWriter
}

// NewQuestionLogService creates a new QuestionLogService. kafkaWriter may be nil.
func NewQuestionLogService(repo QuestionLogRepository, kafkaWriter KafkaWriter) *QuestionLogService {
	return &QuestionLogService{repo: repo, kafkaWriter: kafkaWriter}
}

// CreateLog stores a question log and publishes a question_logged event.
func (s *QuestionLogService) CreateLog(ctx context.Context, in models.QuestionLogInput) (*models.QuestionLog, error) {
	if in.UserID == nil || in.SkillID == nil {
		return nil, fmt.Errorf("%w: user_id and skill_id are required", ErrValidation)
	}
	if strings.TrimSpace(in.QuestionTextGenerated) == "" {
		return nil, fmt.Errorf("%w: question text is required", ErrValidation)
	}
	if in.ResponseTimeMs != nil && *in.ResponseTimeMs < 0 {
		return nil, fmt.Errorf("%w: response time cannot be negative", ErrValidation)
	}

	log, err := s.repo.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create question log", "user_id", *in.UserID, "skill_id", *in.SkillID, "error", err)
		return nil, err
	}

	s.publish(ctx, *log)
	return log, nil
}

// RecentLogs returns up to limit logs of the pair, newest first.
func (s *QuestionLogService) RecentLogs(ctx context.Context, userID, skillID int64, limit int) ([]models.QuestionLog, error) {
	if limit <= 0 {
		limit = DefaultRecentLogs
	}
	return s.repo.Recent(ctx, userID, skillID, limit)
}

// publish sends the log to Kafka. Failures are logged and otherwise ignored.
func (s *QuestionLogService) publish(ctx context.Context, log models.QuestionLog) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "log_id", log.ID)
		return
	}

	event := models.QuestionLogEvent{
		EventID:   uuid.NewString(),
		Event:     models.EventQuestionLogged,
		Timestamp: time.Now().Unix(),
		Log:       log,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal question log event", "log_id", log.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d:%d", log.UserID, log.SkillID)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish question log event", "log_id", log.ID, "error", err)
	} else {
		logger.Log.Infow("Question log event published", "log_id", log.ID, "event_id", event.EventID)
	}
}
