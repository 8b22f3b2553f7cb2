package services_test

import (
	"context"

	"github.com/golang/mock/gomock"

	"github.com/sbilibin2017/sigma-tutor/internal/services"
)

// passThroughTx returns a Transactor mock that runs fn on the caller's context.
func passThroughTx(ctrl *gomock.Controller) *services.MockTransactor {
	tx := services.NewMockTransactor(ctrl)
	tx.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	return tx
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }
