package booking

import (
	"strings"
	"time"

	"event-marketplace/internal/pkg/caldate"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/pkg/money"
	"event-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
)

type Booking struct {
	id               uuid.UUID
	eventID          uuid.UUID
	serviceListingID uuid.UUID
	organizerID      uuid.UUID
	vendorID         uuid.UUID
	serviceDate      time.Time
	requirements     Requirements
	budget           BudgetRange
	quotedPrice      *money.Money
	finalPrice       *money.Money
	additionalNotes  *string
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

type NewBookingParams struct {
	EventID          uuid.UUID
	ServiceListingID uuid.UUID
	OrganizerID      uuid.UUID
	VendorID         uuid.UUID
	ServiceDate      time.Time
	Requirements     Requirements
	Budget           BudgetRange
	AdditionalNotes  *string
}

// NewBooking creates a booking request in PENDING.
func NewBooking(p NewBookingParams, now time.Time) (*Booking, error) {
	if p.ServiceDate.IsZero() {
		return nil, ErrServiceDateRequired
	}
	if p.Requirements == "" {
		return nil, ErrRequirementsRequired
	}
	return &Booking{
		id:               uuid.New(),
		eventID:          p.EventID,
		serviceListingID: p.ServiceListingID,
		organizerID:      p.OrganizerID,
		vendorID:         p.VendorID,
		serviceDate:      caldate.Normalize(p.ServiceDate),
		requirements:     p.Requirements,
		budget:           p.Budget,
		additionalNotes:  normalizeNotes(p.AdditionalNotes),
		status:           StatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

type ReconstructParams struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	ServiceListingID uuid.UUID
	OrganizerID      uuid.UUID
	VendorID         uuid.UUID
	ServiceDate      time.Time
	Requirements     string
	Budget           BudgetRange
	QuotedPrice      *money.Money
	FinalPrice       *money.Money
	AdditionalNotes  *string
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReconstructBooking rebuilds a persisted booking without validation.
func ReconstructBooking(p ReconstructParams) *Booking {
	return &Booking{
		id:               p.ID,
		eventID:          p.EventID,
		serviceListingID: p.ServiceListingID,
		organizerID:      p.OrganizerID,
		vendorID:         p.VendorID,
		serviceDate:      p.ServiceDate,
		requirements:     Requirements(p.Requirements),
		budget:           p.Budget,
		quotedPrice:      p.QuotedPrice,
		finalPrice:       p.FinalPrice,
		additionalNotes:  p.AdditionalNotes,
		status:           p.Status,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) EventID() uuid.UUID          { return b.eventID }
func (b *Booking) ServiceListingID() uuid.UUID { return b.serviceListingID }
func (b *Booking) OrganizerID() uuid.UUID      { return b.organizerID }
func (b *Booking) VendorID() uuid.UUID         { return b.vendorID }
func (b *Booking) ServiceDate() time.Time      { return b.serviceDate }
func (b *Booking) Requirements() Requirements  { return b.requirements }
func (b *Booking) Budget() BudgetRange         { return b.budget }
func (b *Booking) QuotedPrice() *money.Money   { return b.quotedPrice }
func (b *Booking) FinalPrice() *money.Money    { return b.finalPrice }
func (b *Booking) AdditionalNotes() *string    { return b.additionalNotes }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }

// AgreedTotal is finalPrice, else quotedPrice, else zero.
func (b *Booking) AgreedTotal() money.Money {
	return patch.Coalesce(b.finalPrice, patch.Coalesce(b.quotedPrice, money.Zero()))
}

// Update carries the optional fields of a status-update request.
type Update struct {
	Status          *Status
	QuotedPrice     *money.Money
	FinalPrice      *money.Money
	AdditionalNotes *string
}

func (u Update) IsEmpty() bool {
	return u.Status == nil && u.QuotedPrice == nil && u.FinalPrice == nil && u.AdditionalNotes == nil
}

// Change describes the status movement produced by Apply.
type Change struct {
	From Status
	To   Status
}

func (c Change) StatusChanged() bool { return c.From != c.To }

// Entered reports whether the change moved the booking into s.
func (c Change) Entered(s Status) bool {
	return c.To == s && c.From != s
}

// Apply validates u for role and mutates the booking.
func (b *Booking) Apply(role Role, u Update, now time.Time) (Change, error) {
	change := Change{From: b.status, To: b.status}
	if !role.IsParty() {
		return change, ErrNotParty
	}
	if u.IsEmpty() {
		return change, ErrEmptyUpdate
	}
	if u.Status != nil {
		if err := ValidateTransition(b.status, *u.Status, role); err != nil {
			return change, err
		}
	}
	if u.QuotedPrice != nil && role != RoleVendor {
		return change, ErrQuotedPriceRole
	}
	if u.FinalPrice != nil && role != RoleOrganizer {
		return change, ErrFinalPriceRole
	}

	b.status = patch.Coalesce(u.Status, b.status)
	change.To = b.status
	b.quotedPrice = patch.Replace(b.quotedPrice, u.QuotedPrice)
	b.finalPrice = patch.Replace(b.finalPrice, u.FinalPrice)
	if u.AdditionalNotes != nil {
		b.additionalNotes = normalizeNotes(u.AdditionalNotes)
	}
	b.updatedAt = now
	return change, nil
}

// Cancel moves the booking to CANCELLED, recording reason in the notes.
func (b *Booking) Cancel(role Role, reason string, now time.Time) (Change, error) {
	if !role.IsParty() {
		return Change{From: b.status, To: b.status}, ErrNotParty
	}
	if b.status == StatusCompleted || b.status == StatusCancelled {
		return Change{From: b.status, To: b.status}, errs.Wrapf(ErrTransitionNotAllowed, "cannot cancel a %s booking", b.status)
	}
	target := StatusCancelled
	u := Update{Status: &target}
	if reason = strings.TrimSpace(reason); reason != "" {
		notes := "Cancellation reason: " + reason
		if b.additionalNotes != nil && *b.additionalNotes != "" {
			notes = *b.additionalNotes + "\n\n" + notes
		}
		u.AdditionalNotes = &notes
	}
	return b.Apply(role, u, now)
}

func normalizeNotes(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
