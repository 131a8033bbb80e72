package commands

import (
	"context"
	"time"

	"event-marketplace/internal/domain/availability"
	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/pkg/clock"
	"event-marketplace/internal/pkg/money"
	"event-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

type CreateBookingRequest struct {
	EventID          uuid.UUID
	ServiceListingID uuid.UUID
	ServiceDate      time.Time
	Requirements     string
	BudgetMinCents   int64
	BudgetMaxCents   int64
	AdditionalNotes  *string
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type UpdateBookingRequest struct {
	Status           *string
	QuotedPriceCents *int64
	FinalPriceCents  *int64
	AdditionalNotes  *string
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, actorID uuid.UUID) (*CreateBookingResult, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, req UpdateBookingRequest, actorID uuid.UUID) error
	Cancel(ctx context.Context, bookingID uuid.UUID, reason string, actorID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	stats StatisticsInvalidator
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, stats StatisticsInvalidator) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, stats: stats}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest, actorID uuid.UUID) (*CreateBookingResult, error) {
	requirements, err := booking.NewRequirements(req.Requirements)
	if err != nil {
		return nil, err
	}
	budget, err := booking.NewBudgetRange(req.BudgetMinCents, req.BudgetMaxCents)
	if err != nil {
		return nil, err
	}
	if req.ServiceDate.IsZero() {
		return nil, booking.ErrServiceDateRequired
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, derr := tx.Reads().EventByID(ctx, req.EventID)
		if derr != nil {
			return notFoundAs(derr, ErrEventNotFound)
		}
		if ev.OrganizerID != actorID {
			return ErrEventNotOwned
		}

		listing, derr := tx.Reads().ListingByID(ctx, req.ServiceListingID)
		if derr != nil {
			return notFoundAs(derr, ErrListingNotFound)
		}
		if !listing.IsActive() {
			return ErrListingInactive
		}
		if !availability.IsAvailable(listing.Availability, req.ServiceDate) {
			return ErrDateUnavailable
		}

		if derr = tx.Bookings().LockListingDate(ctx, tx.DB(), listing.ID, req.ServiceDate); derr != nil {
			return derr
		}
		occupied, derr := tx.Bookings().HasOccupyingBooking(ctx, tx.DB(), listing.ID, req.ServiceDate, uuid.Nil)
		if derr != nil {
			return derr
		}
		if occupied {
			return ErrDateAlreadyBooked
		}

		b, derr := booking.NewBooking(booking.NewBookingParams{
			EventID:          ev.ID,
			ServiceListingID: listing.ID,
			OrganizerID:      actorID,
			VendorID:         listing.VendorID,
			ServiceDate:      req.ServiceDate,
			Requirements:     requirements,
			Budget:           budget,
			AdditionalNotes:  req.AdditionalNotes,
		}, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		if derr = tx.Listings().IncrementInquiryCount(ctx, tx.DB(), listing.ID); derr != nil {
			return derr
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateStatistics(ctx, uc.stats, created.VendorID(), created.OrganizerID())
	return &CreateBookingResult{BookingID: created.ID()}, nil
}

func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req UpdateBookingRequest, actorID uuid.UUID) error {
	update, err := req.toDomain()
	if err != nil {
		return err
	}

	var updated *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, parties, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if derr != nil {
			return notFoundAs(derr, ErrBookingNotFound)
		}
		role := booking.ResolveActorRole(parties, actorID)
		change, derr := b.Apply(role, update, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = persistBookingChange(ctx, tx, b, change); derr != nil {
			return derr
		}
		updated = b
		return nil
	})
	if err != nil {
		return err
	}

	invalidateStatistics(ctx, uc.stats, updated.VendorID(), updated.OrganizerID())
	return nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID, reason string, actorID uuid.UUID) error {
	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, parties, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if derr != nil {
			return notFoundAs(derr, ErrBookingNotFound)
		}
		role := booking.ResolveActorRole(parties, actorID)
		change, derr := b.Cancel(role, reason, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = persistBookingChange(ctx, tx, b, change); derr != nil {
			return derr
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return err
	}

	invalidateStatistics(ctx, uc.stats, cancelled.VendorID(), cancelled.OrganizerID())
	return nil
}

// toDomain validates field formats; role and transition checks belong to the entity.
func (r UpdateBookingRequest) toDomain() (booking.Update, error) {
	var u booking.Update
	if r.Status != nil {
		s, err := booking.ParseStatus(*r.Status)
		if err != nil {
			return u, err
		}
		u.Status = &s
	}
	if r.QuotedPriceCents != nil {
		m, err := money.New(*r.QuotedPriceCents)
		if err != nil {
			return u, err
		}
		u.QuotedPrice = &m
	}
	if r.FinalPriceCents != nil {
		m, err := money.New(*r.FinalPriceCents)
		if err != nil {
			return u, err
		}
		u.FinalPrice = &m
	}
	u.AdditionalNotes = r.AdditionalNotes
	if u.IsEmpty() {
		return u, booking.ErrEmptyUpdate
	}
	return u, nil
}
