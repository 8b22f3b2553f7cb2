package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

//go:generate mockgen -source=skill.go -destination=skill_mock.go -package=services

// SkillRepository defines storage operations for skills.
type SkillRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	GetByIDString(ctx context.Context, idString string) (*models.Skill, error)
	List(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, idString, name string, description *string) (*models.Skill, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SkillService manages the skill catalog.
type SkillService struct {
	repo SkillRepository
	tx   Transactor
}

// NewSkillService creates a new SkillService instance.
func NewSkillService(repo SkillRepository, tx Transactor) *SkillService {
	return &SkillService{repo: repo, tx: tx}
}

// CreateSkill adds a skill. idString must be unique.
func (s *SkillService) CreateSkill(ctx context.Context, idString, name string, description *string) (*models.Skill, error) {
	idString = strings.TrimSpace(idString)
	name = strings.TrimSpace(name)
	if idString == "" || name == "" {
		return nil, fmt.Errorf("%w: skill id string and name are required", ErrValidation)
	}
	if len(idString) > 100 || len(name) > 255 {
		return nil, fmt.Errorf("%w: skill id string or name too long", ErrValidation)
	}

	var skill *models.Skill
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByIDString(ctx, idString)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: skill %q already exists", ErrDuplicateKey, idString)
		}

		skill, err = s.repo.Create(ctx, idString, name, description)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to create skill", "skill_id_string", idString, "err", err)
		return nil, err
	}

	return skill, nil
}

// GetSkill returns the skill or nil.
func (s *SkillService) GetSkill(ctx context.Context, id int64) (*models.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

// GetSkillByIDString returns the skill or nil.
func (s *SkillService) GetSkillByIDString(ctx context.Context, idString string) (*models.Skill, error) {
	return s.repo.GetByIDString(ctx, idString)
}

// ListSkills returns all skills ordered by name.
func (s *SkillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.repo.List(ctx)
}

// DeleteSkill removes a skill and its progress rows. Fails with ErrReferenced while logs point at it.
func (s *SkillService) DeleteSkill(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete skill", "id", id, "err", err)
	}
	return deleted, err
}
