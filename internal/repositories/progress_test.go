package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

func TestProgressRepository_Create(t *testing.T) {
	db := setupSQLite(t)
	repo := NewProgressRepository(db, TxFromContext)
	ctx := context.Background()

	user := mustCreateUser(t, db, "progress_user")
	skill := mustCreateSkill(t, db, "progress-skill")

	progress, err := repo.Create(ctx, user.ID, skill.ID, models.DefaultDifficulty)
	require.NoError(t, err)
	assert.Equal(t, user.ID, progress.UserID)
	assert.Equal(t, skill.ID, progress.SkillID)
	assert.Equal(t, models.DefaultDifficulty, progress.CurrentDifficulty)
	assert.Zero(t, progress.CorrectStreak)
	assert.Zero(t, progress.IncorrectStreak)
	assert.Nil(t, progress.LastInteractionAt)

	t.Run("Duplicate pair", func(t *testing.T) {
		_, err := repo.Create(ctx, user.ID, skill.ID, 5)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM user_progress`))
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := repo.Create(ctx, user.ID+100, skill.ID, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Unknown skill", func(t *testing.T) {
		_, err := repo.Create(ctx, user.ID, skill.ID+100, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProgressRepository_Get(t *testing.T) {
	db := setupSQLite(t)
	repo := NewProgressRepository(db, TxFromContext)
	ctx := context.Background()

	user := mustCreateUser(t, db, "reader")
	skill := mustCreateSkill(t, db, "reading")

	missing, err := repo.Get(ctx, user.ID, skill.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := repo.Create(ctx, user.ID, skill.ID, 3)
	require.NoError(t, err)

	got, err := repo.Get(ctx, user.ID, skill.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 3, got.CurrentDifficulty)
}

func TestProgressRepository_UpdateState(t *testing.T) {
	db := setupSQLite(t)
	repo := NewProgressRepository(db, TxFromContext)
	ctx := context.Background()

	user := mustCreateUser(t, db, "updater")
	skill := mustCreateSkill(t, db, "updating")
	_, err := repo.Create(ctx, user.ID, skill.ID, 2)
	require.NoError(t, err)

	now := time.Now()

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		got, err := repo.UpdateState(ctx, user.ID, skill.ID, models.ProgressUpdate{CorrectStreak: intPtr(1)}, now)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2, got.CurrentDifficulty)
		assert.Equal(t, 1, got.CorrectStreak)
		assert.Zero(t, got.IncorrectStreak)
		require.NotNil(t, got.LastInteractionAt)
		assert.WithinDuration(t, now, *got.LastInteractionAt, 2*time.Second)
	})

	t.Run("All fields", func(t *testing.T) {
		upd := models.ProgressUpdate{Difficulty: intPtr(4), CorrectStreak: intPtr(0), IncorrectStreak: intPtr(3)}
		got, err := repo.UpdateState(ctx, user.ID, skill.ID, upd, now)
		require.NoError(t, err)
		assert.Equal(t, 4, got.CurrentDifficulty)
		assert.Equal(t, 0, got.CorrectStreak)
		assert.Equal(t, 3, got.IncorrectStreak)

		stored, err := repo.Get(ctx, user.ID, skill.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, stored.CurrentDifficulty)
		assert.Equal(t, 3, stored.IncorrectStreak)
	})

	t.Run("Missing pair", func(t *testing.T) {
		got, err := repo.UpdateState(ctx, user.ID, skill.ID+100, models.ProgressUpdate{Difficulty: intPtr(1)}, now)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
