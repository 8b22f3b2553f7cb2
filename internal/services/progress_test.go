package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
	"github.com/sbilibin2017/sigma-tutor/internal/services"
)

type progressMocks struct {
	repo   *services.MockProgressRepository
	users  *services.MockUserGetter
	skills *services.MockSkillGetter
}

func newProgressService(ctrl *gomock.Controller) (*services.ProgressService, progressMocks) {
	m := progressMocks{
		repo:   services.NewMockProgressRepository(ctrl),
		users:  services.NewMockUserGetter(ctrl),
		skills: services.NewMockSkillGetter(ctrl),
	}
	return services.NewProgressService(m.repo, m.users, m.skills, passThroughTx(ctrl)), m
}

func TestProgressService_GetOrCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()
	existing := &models.UserProgress{ID: 5, UserID: 1, SkillID: 2, CurrentDifficulty: 3}

	tests := []struct {
		name    string
		setup   func(m progressMocks)
		want    *models.UserProgress
		wantErr error
	}{
		{
			name: "existing row",
			setup: func(m progressMocks) {
				m.repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(existing, nil)
			},
			want: existing,
		},
		{
			name: "created",
			setup: func(m progressMocks) {
				m.repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(nil, nil)
				m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
				m.skills.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.Skill{ID: 2}, nil)
				m.repo.EXPECT().Create(gomock.Any(), int64(1), int64(2), models.DefaultDifficulty).Return(existing, nil)
			},
			want: existing,
		},
		{
			name: "missing user",
			setup: func(m progressMocks) {
				m.repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(nil, nil)
				m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			wantErr: services.ErrNotFound,
		},
		{
			name: "missing skill",
			setup: func(m progressMocks) {
				m.repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(nil, nil)
				m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
				m.skills.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)
			},
			wantErr: services.ErrNotFound,
		},
		{
			name: "concurrent insert",
			setup: func(m progressMocks) {
				m.repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(nil, nil)
				m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
				m.skills.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.Skill{ID: 2}, nil)
				m.repo.EXPECT().Create(gomock.Any(), int64(1), int64(2), models.DefaultDifficulty).Return(nil, services.ErrDuplicateKey)
			},
			wantErr: services.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newProgressService(ctrl)
			tt.setup(m)

			got, err := svc.GetOrCreate(ctx, 1, 2, models.DefaultDifficulty)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid default difficulty", func(t *testing.T) {
		svc, _ := newProgressService(ctrl)
		_, err := svc.GetOrCreate(ctx, 1, 2, 0)
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestProgressService_UpdateState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		svc, m := newProgressService(ctrl)
		upd := models.ProgressUpdate{CorrectStreak: intPtr(3)}
		m.repo.EXPECT().UpdateState(gomock.Any(), int64(1), int64(2), upd, gomock.Any()).
			Return(&models.UserProgress{CorrectStreak: 3}, nil)

		got, err := svc.UpdateState(ctx, 1, 2, upd)
		require.NoError(t, err)
		assert.Equal(t, 3, got.CorrectStreak)
	})

	t.Run("empty update reads current row", func(t *testing.T) {
		svc, m := newProgressService(ctrl)
		m.repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(&models.UserProgress{ID: 7}, nil)

		got, err := svc.UpdateState(ctx, 1, 2, models.ProgressUpdate{})
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
	})

	t.Run("no row", func(t *testing.T) {
		svc, m := newProgressService(ctrl)
		m.repo.EXPECT().UpdateState(gomock.Any(), int64(1), int64(2), gomock.Any(), gomock.Any()).Return(nil, nil)

		got, err := svc.UpdateState(ctx, 1, 2, models.ProgressUpdate{Difficulty: intPtr(3)})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("negative streak", func(t *testing.T) {
		svc, _ := newProgressService(ctrl)
		_, err := svc.UpdateState(ctx, 1, 2, models.ProgressUpdate{IncorrectStreak: intPtr(-1)})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("difficulty below one", func(t *testing.T) {
		svc, _ := newProgressService(ctrl)
		_, err := svc.UpdateState(ctx, 1, 2, models.ProgressUpdate{Difficulty: intPtr(0)})
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestProgressService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	svc, m := newProgressService(ctrl)

	m.repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(&models.UserProgress{ID: 3}, nil)
	got, err := svc.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)

	m.repo.EXPECT().Get(gomock.Any(), int64(1), int64(9)).Return(nil, nil)
	got, err = svc.Get(ctx, 1, 9)
	require.NoError(t, err)
	assert.Nil(t, got)
}
