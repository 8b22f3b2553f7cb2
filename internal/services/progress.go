package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

//go:generate mockgen -source=progress.go -destination=progress_mock.go -package=services

// ProgressRepository defines storage operations for progress rows.
type ProgressRepository interface {
	Get(ctx context.Context, userID, skillID int64) (*models.UserProgress, error)
	Create(ctx context.Context, userID, skillID int64, difficulty int) (*models.UserProgress, error)
	UpdateState(ctx context.Context, userID, skillID int64, upd models.ProgressUpdate, at time.Time) (*models.UserProgress, error)
}

// UserGetter looks users up by id.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// SkillGetter looks skills up by id.
type SkillGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
}

// ProgressService maintains the adaptive state of each (user, skill) pair.
type ProgressService struct {
	repo   ProgressRepository
	users  UserGetter
	skills SkillGetter
	tx     Transactor
	now    func() time.Time
}

// NewProgressService creates a new ProgressService instance.
func NewProgressService(repo ProgressRepository, users UserGetter, skills SkillGetter, tx Transactor) *ProgressService {
	return &ProgressService{
		repo:   repo,
		users:  users,
		skills: skills,
		tx:     tx,
		now:    time.Now,
	}
}

// GetOrCreate returns the progress of the pair, creating it with defaultDifficulty
// and zero streaks when absent. A concurrent creation of the same pair fails with ErrDuplicateKey.
func (s *ProgressService) GetOrCreate(ctx context.Context, userID, skillID int64, defaultDifficulty int) (*models.UserProgress, error) {
	if defaultDifficulty < 1 {
		return nil, fmt.Errorf("%w: difficulty must be at least 1", ErrValidation)
	}

	var progress *models.UserProgress
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		progress, err = s.repo.Get(ctx, userID, skillID)
		if err != nil || progress != nil {
			return err
		}

		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: user id=%d", ErrNotFound, userID)
		}

		skill, err := s.skills.GetByID(ctx, skillID)
		if err != nil {
			return err
		}
		if skill == nil {
			return fmt.Errorf("%w: skill id=%d", ErrNotFound, skillID)
		}

		progress, err = s.repo.Create(ctx, userID, skillID, defaultDifficulty)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to get or create progress", "user_id", userID, "skill_id", skillID, "err", err)
		return nil, err
	}

	return progress, nil
}

// Get returns the progress of the pair or nil.
func (s *ProgressService) Get(ctx context.Context, userID, skillID int64) (*models.UserProgress, error) {
	return s.repo.Get(ctx, userID, skillID)
}

// UpdateState changes the supplied fields and refreshes the last interaction time.
// An empty update returns the current row untouched. Returns nil when the pair has no progress.
func (s *ProgressService) UpdateState(ctx context.Context, userID, skillID int64, upd models.ProgressUpdate) (*models.UserProgress, error) {
	if upd.Difficulty != nil && *upd.Difficulty < 1 {
		return nil, fmt.Errorf("%w: difficulty must be at least 1", ErrValidation)
	}
	if (upd.CorrectStreak != nil && *upd.CorrectStreak < 0) || (upd.IncorrectStreak != nil && *upd.IncorrectStreak < 0) {
		return nil, fmt.Errorf("%w: streaks cannot be negative", ErrValidation)
	}

	if upd.Empty() {
		return s.repo.Get(ctx, userID, skillID)
	}

	progress, err := s.repo.UpdateState(ctx, userID, skillID, upd, s.now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to update progress", "user_id", userID, "skill_id", skillID, "err", err)
		return nil, err
	}
	return progress, nil
}
