package commands

import (
	"context"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/infra"
	"event-marketplace/internal/usecase/shared"
)

// persistBookingChange writes b and runs the side effects of change inside tx.
// Entering an occupying status takes the listing/date lock first; the unique
// index backs it up.
func persistBookingChange(ctx context.Context, tx shared.Tx, b *booking.Booking, change booking.Change) error {
	if change.StatusChanged() && change.To.Occupying() {
		if err := tx.Bookings().LockListingDate(ctx, tx.DB(), b.ServiceListingID(), b.ServiceDate()); err != nil {
			return err
		}
		occupied, err := tx.Bookings().HasOccupyingBooking(ctx, tx.DB(), b.ServiceListingID(), b.ServiceDate(), b.ID())
		if err != nil {
			return err
		}
		if occupied {
			return ErrDateAlreadyBooked
		}
	}

	if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintName(err) == occupiedDateConstraint {
			return ErrDateAlreadyBooked
		}
		return notFoundAs(err, ErrBookingNotFound)
	}

	if change.Entered(booking.StatusConfirmed) {
		if err := tx.Listings().IncrementBookingCount(ctx, tx.DB(), b.ServiceListingID()); err != nil {
			return err
		}
	}
	if change.Entered(booking.StatusCompleted) {
		if _, err := tx.Vendors().RecalculateCompletionRate(ctx, tx.DB(), b.VendorID()); err != nil {
			return err
		}
	}
	return nil
}
