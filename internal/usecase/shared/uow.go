package shared

import (
	"context"
	"time"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/domain/booking"
	sqlc "event-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Messages() MessageRepository
	Agreements() AgreementRepository
	Listings() ListingRepository
	Vendors() VendorRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	AgreementContext(ctx context.Context, bookingID uuid.UUID) (*AgreementContext, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// FindForUpdate row-locks the booking until the transaction ends.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, booking.Parties, error)
	HasOccupyingBooking(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, serviceDate time.Time, excludeID uuid.UUID) (bool, error)
	LockListingDate(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, serviceDate time.Time) error
}

type MessageRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, msg *booking.Message) error
}

type AgreementRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *agreement.ServiceAgreement) error
	Update(ctx context.Context, tx sqlc.DBTX, a *agreement.ServiceAgreement) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*agreement.ServiceAgreement, booking.Parties, error)
}

type ListingRepository interface {
	IncrementInquiryCount(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID) error
	IncrementBookingCount(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID) error
}

type VendorRepository interface {
	// RecalculateCompletionRate locks the vendor row before counting.
	RecalculateCompletionRate(ctx context.Context, tx sqlc.DBTX, vendorID uuid.UUID) (float64, error)
}
