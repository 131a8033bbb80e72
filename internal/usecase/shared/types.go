package shared

import (
	"time"

	"event-marketplace/internal/domain/availability"
	"event-marketplace/internal/domain/booking"

	"github.com/google/uuid"
)

const ListingStatusActive = "ACTIVE"

// Minimal snapshots for command read operations

type EventSnapshot struct {
	ID          uuid.UUID
	OrganizerID uuid.UUID
	Name        string
	EventDate   time.Time
}

type ListingSnapshot struct {
	ID           uuid.UUID
	VendorID     uuid.UUID
	VendorUserID uuid.UUID
	Title        string
	Category     string
	Status       string
	Availability *availability.Rules
}

func (l *ListingSnapshot) IsActive() bool {
	return l.Status == ListingStatusActive
}

type BookingSnapshot struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	ServiceListingID uuid.UUID
	OrganizerID      uuid.UUID
	VendorID         uuid.UUID
	VendorUserID     uuid.UUID
	ServiceDate      time.Time
	Status           booking.Status
}

func (b *BookingSnapshot) Parties() booking.Parties {
	return booking.Parties{OrganizerID: b.OrganizerID, VendorUserID: b.VendorUserID}
}

type VendorSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	BusinessName string
}

// AgreementContext is everything agreement generation reads about a booking.
type AgreementContext struct {
	BookingID          uuid.UUID
	OrganizerID        uuid.UUID
	VendorUserID       uuid.UUID
	Status             booking.Status
	ServiceDate        time.Time
	QuotedPriceCents   *int64
	FinalPriceCents    *int64
	EventName          string
	EventDate          time.Time
	OrganizerName      string
	VendorBusinessName string
	ListingTitle       string
	ListingCategory    string
	HasAgreement       bool
}

func (c *AgreementContext) Parties() booking.Parties {
	return booking.Parties{OrganizerID: c.OrganizerID, VendorUserID: c.VendorUserID}
}
