package queries

import (
	"context"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/domain/booking"

	"github.com/google/uuid"
)

//go:generate mockgen -source=agreement.go -destination=../../../tests/mock/queries/agreement_mock.go -package=queriesmock

type AgreementReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*agreement.ServiceAgreement, booking.Parties, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*agreement.ServiceAgreement, booking.Parties, error)
}

type AgreementQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID) (*agreement.ServiceAgreement, error)
	GetByBookingID(ctx context.Context, bookingID, actorID uuid.UUID) (*agreement.ServiceAgreement, error)
	GetProgress(ctx context.Context, id, actorID uuid.UUID) (*agreement.Progress, error)
}

type agreementQueriesImpl struct {
	repo     AgreementReadStore
	bookings BookingReadStore
}

func NewAgreementQueries(repo AgreementReadStore, bookings BookingReadStore) AgreementQueries {
	return &agreementQueriesImpl{repo: repo, bookings: bookings}
}

func (q *agreementQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID) (*agreement.ServiceAgreement, error) {
	a, parties, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrAgreementNotFound)
	}
	if !booking.ResolveActorRole(parties, actorID).IsParty() {
		return nil, booking.ErrNotParty
	}
	return a, nil
}

// GetByBookingID checks booking access first so a stranger learns nothing about the agreement.
func (q *agreementQueriesImpl) GetByBookingID(ctx context.Context, bookingID, actorID uuid.UUID) (*agreement.ServiceAgreement, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, notFoundAs(err, ErrBookingNotFound)
	}
	if err := authorizeParty(view, actorID); err != nil {
		return nil, err
	}
	a, _, err := q.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, notFoundAs(err, ErrAgreementNotFound)
	}
	return a, nil
}

func (q *agreementQueriesImpl) GetProgress(ctx context.Context, id, actorID uuid.UUID) (*agreement.Progress, error) {
	a, err := q.GetByID(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	p := a.Progress()
	return &p, nil
}
