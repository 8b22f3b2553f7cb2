package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

func TestSessionMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	sess := &models.Session{
		ID:      "abc",
		UserID:  7,
		Flashes: []models.Flash{{Category: models.FlashSuccess, Message: "Login successful!"}},
	}

	t.Run("Save and Get", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, sess, time.Minute))

		got, err := repo.Get(ctx, "abc")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(7), got.UserID)
		assert.Equal(t, sess.Flashes, got.Flashes)

		got.UserID = 8
		again, err := repo.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, int64(7), again.UserID)
	})

	t.Run("Missing", func(t *testing.T) {
		got, err := repo.Get(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Expired", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		got, err := repo.Get(ctx, "abc")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, sess, 0))
		require.NoError(t, repo.Delete(ctx, "abc"))

		got, err := repo.Get(ctx, "abc")
		assert.NoError(t, err)
		assert.Nil(t, got)

		assert.NoError(t, repo.Delete(ctx, "abc"))
	})
}
