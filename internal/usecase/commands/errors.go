package commands

import (
	"event-marketplace/internal/infra"
	"event-marketplace/internal/pkg/errs"
)

var (
	ErrEventNotFound         = errs.Mark(errs.New("event not found"), errs.ErrNotFound)
	ErrListingNotFound       = errs.Mark(errs.New("service listing not found"), errs.ErrNotFound)
	ErrBookingNotFound       = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrAgreementNotFound     = errs.Mark(errs.New("service agreement not found"), errs.ErrNotFound)
	ErrEventNotOwned         = errs.Mark(errs.New("actor does not organize this event"), errs.ErrForbidden)
	ErrListingInactive       = errs.Mark(errs.New("service listing is not active"), errs.ErrInvalidState)
	ErrDateUnavailable       = errs.Mark(errs.New("date unavailable"), errs.ErrConflict)
	ErrDateAlreadyBooked     = errs.Mark(errs.New("listing is already booked for this date"), errs.ErrConflict)
	ErrAgreementBookingState = errs.Mark(errs.New("agreement requires a QUOTE_ACCEPTED booking"), errs.ErrInvalidState)
	ErrAgreementExists       = errs.Mark(errs.New("booking already has a service agreement"), errs.ErrAlreadyExists)
	ErrSignatureRole         = errs.Mark(errs.New("actor may not sign for this party"), errs.ErrRoleNotPermitted)
)

const occupiedDateConstraint = "uq_booking_requests_occupied_date"

// notFoundAs swaps a storage NOT_FOUND for the caller-facing sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
