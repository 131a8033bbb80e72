package booking

import (
	"strings"

	"event-marketplace/internal/pkg/errs"
)

type Status string

const (
	StatusPending         Status = "PENDING"
	StatusVendorReviewing Status = "VENDOR_REVIEWING"
	StatusQuoteSent       Status = "QUOTE_SENT"
	StatusQuoteAccepted   Status = "QUOTE_ACCEPTED"
	StatusConfirmed       Status = "CONFIRMED"
	StatusInProgress      Status = "IN_PROGRESS"
	StatusCompleted       Status = "COMPLETED"
	StatusCancelled       Status = "CANCELLED"
	StatusDisputed        Status = "DISPUTED"
)

var AllStatuses = []Status{
	StatusPending,
	StatusVendorReviewing,
	StatusQuoteSent,
	StatusQuoteAccepted,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusDisputed,
}

var ErrInvalidStatus = errs.Mark(errs.New("invalid booking status"), errs.ErrValidation)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", errs.Wrapf(ErrInvalidStatus, "%q", s)
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Occupying reports whether a booking in this status holds its listing's date.
func (s Status) Occupying() bool {
	return s == StatusConfirmed || s == StatusInProgress
}

// Role of an actor relative to one booking.
type Role string

const (
	RoleNone      Role = ""
	RoleOrganizer Role = "ORGANIZER"
	RoleVendor    Role = "VENDOR"
)

func (r Role) String() string { return string(r) }

func (r Role) IsParty() bool {
	return r == RoleOrganizer || r == RoleVendor
}
