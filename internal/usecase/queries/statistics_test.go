//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/usecase/queries"
	queriesmock "event-marketplace/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestComputeStatistics(t *testing.T) {
	t.Run("rates rounded to two decimals", func(t *testing.T) {
		stats := queries.ComputeStatistics(queries.ScopeVendor, &queries.StatusCounts{
			Total: 3,
			ByStatus: map[booking.Status]int64{
				booking.StatusConfirmed: 1,
				booking.StatusCompleted: 1,
				booking.StatusCancelled: 1,
			},
			TotalRevenueCents: 90000,
		})

		assert.Equal(t, int64(3), stats.Total)
		assert.Equal(t, 66.67, stats.ConversionRate)
		assert.Equal(t, 33.33, stats.CompletionRate)
		assert.Equal(t, 33.33, stats.CancellationRate)
		assert.Len(t, stats.ByStatus, len(booking.AllStatuses))
		assert.Equal(t, int64(0), stats.ByStatus["DISPUTED"])
	})

	t.Run("no bookings yields zero rates", func(t *testing.T) {
		stats := queries.ComputeStatistics(queries.ScopeOrganizer, &queries.StatusCounts{})

		assert.Zero(t, stats.ConversionRate)
		assert.Zero(t, stats.CompletionRate)
		assert.Zero(t, stats.CancellationRate)
		assert.Equal(t, queries.ScopeOrganizer, stats.Scope)
	})
}

func TestStatisticsQueries_GetBookingStatistics(t *testing.T) {
	ctx := context.Background()
	actorID, vendorID := uuid.New(), uuid.New()
	vendorKey := queries.VendorStatisticsKey(vendorID)

	t.Run("success: cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockStatisticsReadStore(ctrl)
		parties := queriesmock.NewMockPartyReadStore(ctrl)
		cache := queriesmock.NewMockStatisticsCache(ctrl)
		cached := &queries.BookingStatistics{Scope: queries.ScopeVendor, Total: 9}
		parties.EXPECT().VendorIDByUserID(ctx, actorID).Return(vendorID, nil)
		cache.EXPECT().Get(ctx, vendorKey).Return(cached, int64(0), true, nil)
		q := queries.NewStatisticsQueries(repo, parties, cache)

		got, err := q.GetBookingStatistics(ctx, actorID, queries.ScopeVendor)

		require.NoError(t, err)
		assert.Same(t, cached, got)
	})

	t.Run("success: miss loads and fills the generation it read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockStatisticsReadStore(ctrl)
		parties := queriesmock.NewMockPartyReadStore(ctrl)
		cache := queriesmock.NewMockStatisticsCache(ctrl)
		parties.EXPECT().VendorIDByUserID(ctx, actorID).Return(vendorID, nil)
		cache.EXPECT().Get(ctx, vendorKey).Return(nil, int64(3), false, nil)
		repo.EXPECT().VendorCounts(gomock.Any(), vendorID).Return(&queries.StatusCounts{Total: 2, ByStatus: map[booking.Status]int64{booking.StatusCompleted: 2}}, nil)
		cache.EXPECT().Set(gomock.Any(), vendorKey, int64(3), gomock.Any()).Return(nil)
		q := queries.NewStatisticsQueries(repo, parties, cache)

		got, err := q.GetBookingStatistics(ctx, actorID, queries.ScopeVendor)

		require.NoError(t, err)
		assert.Equal(t, 100.0, got.CompletionRate)
	})

	t.Run("success: unreadable cache is bypassed and not written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockStatisticsReadStore(ctrl)
		parties := queriesmock.NewMockPartyReadStore(ctrl)
		cache := queriesmock.NewMockStatisticsCache(ctrl)
		organizerKey := queries.OrganizerStatisticsKey(actorID)
		cache.EXPECT().Get(ctx, organizerKey).Return(nil, int64(0), false, errors.New("redis down"))
		repo.EXPECT().OrganizerCounts(gomock.Any(), actorID).Return(&queries.StatusCounts{}, nil)
		q := queries.NewStatisticsQueries(repo, parties, cache)

		got, err := q.GetBookingStatistics(ctx, actorID, queries.ScopeOrganizer)

		require.NoError(t, err)
		assert.Equal(t, queries.ScopeOrganizer, got.Scope)
	})

	t.Run("success: cache write failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockStatisticsReadStore(ctrl)
		parties := queriesmock.NewMockPartyReadStore(ctrl)
		cache := queriesmock.NewMockStatisticsCache(ctrl)
		organizerKey := queries.OrganizerStatisticsKey(actorID)
		cache.EXPECT().Get(ctx, organizerKey).Return(nil, int64(1), false, nil)
		repo.EXPECT().OrganizerCounts(gomock.Any(), actorID).Return(&queries.StatusCounts{Total: 1}, nil)
		cache.EXPECT().Set(gomock.Any(), organizerKey, int64(1), gomock.Any()).Return(errors.New("redis down"))
		q := queries.NewStatisticsQueries(repo, parties, cache)

		got, err := q.GetBookingStatistics(ctx, actorID, queries.ScopeOrganizer)

		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Total)
	})

	t.Run("success: load survives a cancelled caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockStatisticsReadStore(ctrl)
		parties := queriesmock.NewMockPartyReadStore(ctrl)
		cache := queriesmock.NewMockStatisticsCache(ctrl)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		organizerKey := queries.OrganizerStatisticsKey(actorID)
		cache.EXPECT().Get(cancelled, organizerKey).Return(nil, int64(0), false, nil)
		repo.EXPECT().OrganizerCounts(gomock.Any(), actorID).DoAndReturn(
			func(loadCtx context.Context, _ uuid.UUID) (*queries.StatusCounts, error) {
				if err := loadCtx.Err(); err != nil {
					return nil, err
				}
				return &queries.StatusCounts{Total: 4}, nil
			})
		cache.EXPECT().Set(gomock.Any(), organizerKey, int64(0), gomock.Any()).Return(nil)
		q := queries.NewStatisticsQueries(repo, parties, cache)

		got, err := q.GetBookingStatistics(cancelled, actorID, queries.ScopeOrganizer)

		require.NoError(t, err)
		assert.Equal(t, int64(4), got.Total)
	})

	t.Run("error: unknown scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewStatisticsQueries(queriesmock.NewMockStatisticsReadStore(ctrl), queriesmock.NewMockPartyReadStore(ctrl), queriesmock.NewMockStatisticsCache(ctrl))

		_, err := q.GetBookingStatistics(ctx, actorID, "admin")

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
