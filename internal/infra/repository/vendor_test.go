//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"event-marketplace/internal/infra"
	"event-marketplace/internal/infra/repository"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/pkg/pgconv"
	repositorymock "event-marketplace/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCompletionRate(t *testing.T) {
	testCases := []struct {
		name      string
		completed int64
		total     int64
		want      float64
	}{
		{name: "no bookings counts as perfect", completed: 0, total: 0, want: 100},
		{name: "all completed", completed: 4, total: 4, want: 100},
		{name: "two thirds rounded to two decimals", completed: 2, total: 3, want: 66.67},
		{name: "none completed", completed: 0, total: 5, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, repository.CompletionRate(tc.completed, tc.total))
		})
	}
}

func TestVendorRepository_RecalculateCompletionRate(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()

	t.Run("success: rate written back to the profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockVendorWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewVendorRepository(mockQueries)

		gomock.InOrder(
			mockQueries.EXPECT().LockVendorProfile(ctx, mockDB, vendorID).Return(vendorID, nil),
			mockQueries.EXPECT().CountVendorBookingsForCompletion(ctx, mockDB, vendorID).
				Return(sqlc.CountVendorBookingsForCompletionRow{Total: 4, Completed: 3}, nil),
			mockQueries.EXPECT().UpdateVendorCompletionRate(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateVendorCompletionRateParams) error {
					got, err := pgconv.Float64FromNumeric(arg.CompletionRate)
					require.NoError(t, err)
					assert.Equal(t, 75.0, got)
					return nil
				}),
		)

		rate, err := repo.RecalculateCompletionRate(ctx, mockDB, vendorID)

		require.NoError(t, err)
		assert.Equal(t, 75.0, rate)
	})

	t.Run("error: vendor profile missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockVendorWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewVendorRepository(mockQueries)

		mockQueries.EXPECT().LockVendorProfile(ctx, mockDB, vendorID).Return(uuid.Nil, pgx.ErrNoRows)

		_, err := repo.RecalculateCompletionRate(ctx, mockDB, vendorID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: count query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockVendorWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewVendorRepository(mockQueries)

		mockQueries.EXPECT().LockVendorProfile(ctx, mockDB, vendorID).Return(vendorID, nil)
		mockQueries.EXPECT().CountVendorBookingsForCompletion(ctx, mockDB, vendorID).
			Return(sqlc.CountVendorBookingsForCompletionRow{}, errors.New("timeout"))

		_, err := repo.RecalculateCompletionRate(ctx, mockDB, vendorID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
