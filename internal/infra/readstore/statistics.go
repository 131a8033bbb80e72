package readstore

import (
	"context"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/infra"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=statistics.go -destination=../../../tests/mock/readstore/statistics_mock.go -package=readstoremock

type StatisticsViewQueries interface {
	GetVendorBookingStatistics(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) (sqlc.GetVendorBookingStatisticsRow, error)
	GetOrganizerBookingStatistics(ctx context.Context, db sqlc.DBTX, organizerID uuid.UUID) (sqlc.GetOrganizerBookingStatisticsRow, error)
}

type StatisticsReadStore struct {
	queries StatisticsViewQueries
	db      sqlc.DBTX
}

func NewStatisticsReadStore(queries StatisticsViewQueries, db sqlc.DBTX) *StatisticsReadStore {
	return &StatisticsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StatisticsReadStore) VendorCounts(ctx context.Context, vendorID uuid.UUID) (*queries.StatusCounts, error) {
	row, err := r.queries.GetVendorBookingStatistics(ctx, r.db, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get vendor booking statistics", err)
	}
	return mapStatusCounts(statisticsRow(row)), nil
}

func (r *StatisticsReadStore) OrganizerCounts(ctx context.Context, organizerID uuid.UUID) (*queries.StatusCounts, error) {
	row, err := r.queries.GetOrganizerBookingStatistics(ctx, r.db, organizerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get organizer booking statistics", err)
	}
	return mapStatusCounts(statisticsRow(row)), nil
}

type statisticsRow = sqlc.GetVendorBookingStatisticsRow

func mapStatusCounts(row statisticsRow) *queries.StatusCounts {
	return &queries.StatusCounts{
		Total: row.Total,
		ByStatus: map[booking.Status]int64{
			booking.StatusPending:         row.Pending,
			booking.StatusVendorReviewing: row.VendorReviewing,
			booking.StatusQuoteSent:       row.QuoteSent,
			booking.StatusQuoteAccepted:   row.QuoteAccepted,
			booking.StatusConfirmed:       row.Confirmed,
			booking.StatusInProgress:      row.InProgress,
			booking.StatusCompleted:       row.Completed,
			booking.StatusCancelled:       row.Cancelled,
			booking.StatusDisputed:        row.Disputed,
		},
		TotalRevenueCents: row.TotalRevenueCents,
	}
}
