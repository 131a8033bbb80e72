package queries

import (
	"event-marketplace/internal/infra"
	"event-marketplace/internal/pkg/errs"
)

var (
	ErrBookingNotFound       = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrAgreementNotFound     = errs.Mark(errs.New("service agreement not found"), errs.ErrNotFound)
	ErrEventNotFound         = errs.Mark(errs.New("event not found"), errs.ErrNotFound)
	ErrVendorProfileNotFound = errs.Mark(errs.New("vendor profile not found"), errs.ErrNotFound)
	ErrEventAccess           = errs.Mark(errs.New("only the event organizer may list its bookings"), errs.ErrForbidden)
	ErrInvalidCursor         = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
	ErrInvalidScope          = errs.Mark(errs.New("scope must be vendor or organizer"), errs.ErrValidation)
)

// notFoundAs swaps a storage NOT_FOUND for the caller-facing sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
