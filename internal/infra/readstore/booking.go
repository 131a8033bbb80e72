package readstore

import (
	"context"
	"time"

	"event-marketplace/internal/infra"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/pkg/pgconv"
	"event-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking_mock.go -package=readstoremock

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingsByEventFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByEventFirstPageParams) ([]sqlc.ListBookingsByEventFirstPageRow, error)
	ListBookingsByEventKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByEventKeysetParams) ([]sqlc.ListBookingsByEventKeysetRow, error)
	ListBookingsByVendorFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByVendorFirstPageParams) ([]sqlc.ListBookingsByVendorFirstPageRow, error)
	ListBookingsByVendorKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByVendorKeysetParams) ([]sqlc.ListBookingsByVendorKeysetRow, error)
	ListBookingMessages(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingMessages, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return mapBookingView(bookingViewRow(row)), nil
}

func (r *BookingReadStore) FindByEventFirstPage(ctx context.Context, eventID uuid.UUID, status *string, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByEventFirstPage(ctx, r.db, sqlc.ListBookingsByEventFirstPageParams{
		EventID: eventID,
		Limit:   limit,
		Status:  pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by event", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = mapBookingView(bookingViewRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) FindByEventKeyset(ctx context.Context, eventID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByEventKeyset(ctx, r.db, sqlc.ListBookingsByEventKeysetParams{
		EventID:   eventID,
		Limit:     limit,
		Status:    pgconv.StringPtrToPgtype(status),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset by event", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = mapBookingView(bookingViewRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) FindByVendorFirstPage(ctx context.Context, vendorID uuid.UUID, status *string, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByVendorFirstPage(ctx, r.db, sqlc.ListBookingsByVendorFirstPageParams{
		VendorID: vendorID,
		Limit:    limit,
		Status:   pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by vendor", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = mapBookingView(bookingViewRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) FindByVendorKeyset(ctx context.Context, vendorID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByVendorKeyset(ctx, r.db, sqlc.ListBookingsByVendorKeysetParams{
		VendorID:  vendorID,
		Limit:     limit,
		Status:    pgconv.StringPtrToPgtype(status),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset by vendor", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = mapBookingView(bookingViewRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) ListMessages(ctx context.Context, bookingID uuid.UUID) ([]*queries.MessageView, error) {
	rows, err := r.queries.ListBookingMessages(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking messages", err)
	}
	result := make([]*queries.MessageView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MessageView{
			ID:         row.ID,
			BookingID:  row.BookingID,
			SenderID:   row.SenderID,
			SenderType: row.SenderType,
			Content:    row.Content,
			SentAt:     pgconv.TimeFromPgtype(row.SentAt),
		}
	}
	return result, nil
}

// bookingViewRow is the column set shared by every booking view query; the
// generated row types convert to it directly.
type bookingViewRow = sqlc.GetBookingViewRow

func mapBookingView(row bookingViewRow) *queries.BookingView {
	b := row.BookingRequests
	return &queries.BookingView{
		ID:                 b.ID,
		EventID:            b.EventID,
		EventName:          row.EventName,
		ServiceListingID:   b.ServiceListingID,
		ListingTitle:       row.ListingTitle,
		ListingCategory:    row.ListingCategory,
		OrganizerID:        b.OrganizerID,
		VendorID:           b.VendorID,
		VendorUserID:       row.VendorUserID,
		VendorBusinessName: row.VendorBusinessName,
		ServiceDate:        pgconv.DateFromPgtype(b.ServiceDate),
		Requirements:       b.Requirements,
		BudgetMinCents:     b.BudgetMinCents,
		BudgetMaxCents:     b.BudgetMaxCents,
		QuotedPriceCents:   pgconv.Int64PtrFromPgtype(b.QuotedPriceCents),
		FinalPriceCents:    pgconv.Int64PtrFromPgtype(b.FinalPriceCents),
		AdditionalNotes:    pgconv.StringPtrFromPgtype(b.AdditionalNotes),
		Status:             b.Status,
		CreatedAt:          pgconv.TimeFromPgtype(b.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(b.UpdatedAt),
	}
}
