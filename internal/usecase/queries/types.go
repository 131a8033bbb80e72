package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data joined with its event, listing and vendor
type BookingView struct {
	ID                 uuid.UUID `json:"id"`
	EventID            uuid.UUID `json:"event_id"`
	EventName          string    `json:"event_name"`
	ServiceListingID   uuid.UUID `json:"service_listing_id"`
	ListingTitle       string    `json:"listing_title"`
	ListingCategory    string    `json:"listing_category"`
	OrganizerID        uuid.UUID `json:"organizer_id"`
	VendorID           uuid.UUID `json:"vendor_id"`
	VendorUserID       uuid.UUID `json:"vendor_user_id"`
	VendorBusinessName string    `json:"vendor_business_name"`
	ServiceDate        time.Time `json:"service_date"`
	Requirements       string    `json:"requirements"`
	BudgetMinCents     int64     `json:"budget_min_cents"`
	BudgetMaxCents     int64     `json:"budget_max_cents"`
	QuotedPriceCents   *int64    `json:"quoted_price_cents,omitempty"`
	FinalPriceCents    *int64    `json:"final_price_cents,omitempty"`
	AdditionalNotes    *string   `json:"additional_notes,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// MessageView represents one booking message
type MessageView struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	SenderType string    `json:"sender_type"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

const (
	TimelineBookingCreated = "BOOKING_CREATED"
	TimelineMessage        = "MESSAGE"
)

// TimelineEntry is one derived item of a booking's history
type TimelineEntry struct {
	Type      string       `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
	Status    string       `json:"status,omitempty"`
	Message   *MessageView `json:"message,omitempty"`
}

type BookingFilters struct {
	Status *string
}
