package repository

import (
	"context"
	"time"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/infra"
	"event-marketplace/internal/infra/repository/converter"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/pkg/caldate"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking_mock.go -package=repositorymock

type BookingWriteQueries interface {
	CreateBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingRequestParams) error
	UpdateBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingRequestParams) (int64, error)
	LockBookingRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockBookingRequestRow, error)
	ExistsOccupyingBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOccupyingBookingParams) (bool, error)
	AcquireListingDateLock(ctx context.Context, db sqlc.DBTX, lockKey string) error
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBookingRequest(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking request", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingRequest(ctx, tx, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking request", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, booking.Parties, error) {
	row, err := r.queries.LockBookingRequest(ctx, tx, id)
	if err != nil {
		return nil, booking.Parties{}, infra.WrapRepoErr("failed to lock booking request", err)
	}
	b, err := converter.BookingFromRow(row.BookingRequests)
	if err != nil {
		return nil, booking.Parties{}, infra.WrapRepoErr("invalid booking request row", errs.New(err.Error()), infra.KindCorruptData)
	}
	parties := booking.Parties{OrganizerID: row.BookingRequests.OrganizerID, VendorUserID: row.VendorUserID}
	return b, parties, nil
}

func (r *BookingRepository) HasOccupyingBooking(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, serviceDate time.Time, excludeID uuid.UUID) (bool, error) {
	occupied, err := r.queries.ExistsOccupyingBooking(ctx, tx, sqlc.ExistsOccupyingBookingParams{
		ServiceListingID: listingID,
		ServiceDate:      pgconv.DateToPgtype(serviceDate),
		ExcludeID:        excludeID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check occupying booking", err)
	}
	return occupied, nil
}

// LockListingDate serializes writers on one (listing, date) pair until the transaction ends.
func (r *BookingRepository) LockListingDate(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, serviceDate time.Time) error {
	if err := r.queries.AcquireListingDateLock(ctx, tx, ListingDateLockKey(listingID, serviceDate)); err != nil {
		return infra.WrapRepoErr("failed to acquire listing date lock", err)
	}
	return nil
}

func ListingDateLockKey(listingID uuid.UUID, serviceDate time.Time) string {
	return listingID.String() + "|" + caldate.Format(serviceDate)
}
