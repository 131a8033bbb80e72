//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	reqdto "event-marketplace/internal/handler/dto/request"
	resdto "event-marketplace/internal/handler/dto/response"
	"event-marketplace/tests/common/dbtest"
	"event-marketplace/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	BookingsURL  = "/api/bookings"
	BookingURL   = "/api/bookings/%s"
	AgreementURL = "/api/agreements/%s"
)

// Marketplace is one organizer, one vendor and an active listing.
type Marketplace struct {
	OrganizerID    uuid.UUID
	OrganizerToken string
	VendorUserID   uuid.UUID
	VendorID       uuid.UUID
	VendorToken    string
	EventID        uuid.UUID
	ListingID      uuid.UUID
}

// SeedMarketplace inserts the parties; availability is raw JSON or nil for always-open.
func (s *SharedSuite) SeedMarketplace(t *testing.T, category string, availability *string) Marketplace {
	t.Helper()

	suffix := uuid.NewString()[:8]
	organizerID := dbtest.CreateTestUser(t, s.DB, "Olivia Organizer", "organizer-"+suffix+"@example.com")
	vendorUserID := dbtest.CreateTestUser(t, s.DB, "Victor Vendor", "vendor-"+suffix+"@example.com")
	vendorID := dbtest.CreateTestVendor(t, s.DB, vendorUserID, "Bright Kitchen "+suffix)
	eventID := dbtest.CreateTestEvent(t, s.DB, organizerID, "Spring Gala", time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC))
	listingID := dbtest.CreateTestListing(t, s.DB, vendorID, "Full-service "+category, category, "ACTIVE", availability)

	return Marketplace{
		OrganizerID:    organizerID,
		OrganizerToken: s.JWT.GenerateToken(t, organizerID),
		VendorUserID:   vendorUserID,
		VendorID:       vendorID,
		VendorToken:    s.JWT.GenerateToken(t, vendorUserID),
		EventID:        eventID,
		ListingID:      listingID,
	}
}

func (m Marketplace) CreateRequest(serviceDate string) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		EventID:          m.EventID,
		ServiceListingID: m.ListingID,
		ServiceDate:      serviceDate,
		Requirements:     "Dinner for 120 guests",
		BudgetMinCents:   500000,
		BudgetMaxCents:   800000,
	}
}

// CreateBooking posts a booking as the organizer and returns its view.
func (s *SharedSuite) CreateBooking(t *testing.T, m Marketplace, serviceDate string) resdto.BookingResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, BookingsURL, m.CreateRequest(serviceDate), m.OrganizerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created resdto.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// Transition patches the booking and requires the given status code.
func (s *SharedSuite) Transition(t *testing.T, bookingID, token string, body map[string]any, wantCode int) resdto.BookingResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(BookingURL, bookingID), body, token)
	require.Equal(t, wantCode, w.Code, w.Body.String())

	var res resdto.BookingResponse
	if wantCode == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	}
	return res
}

// AdvanceToQuoteAccepted walks a PENDING booking through review, quote and acceptance.
func (s *SharedSuite) AdvanceToQuoteAccepted(t *testing.T, m Marketplace, bookingID string, quoteCents int64) {
	t.Helper()

	s.Transition(t, bookingID, m.VendorToken, map[string]any{"status": "VENDOR_REVIEWING"}, http.StatusOK)
	s.Transition(t, bookingID, m.VendorToken, map[string]any{"status": "QUOTE_SENT", "quoted_price_cents": quoteCents}, http.StatusOK)
	s.Transition(t, bookingID, m.OrganizerToken, map[string]any{"status": "QUOTE_ACCEPTED"}, http.StatusOK)
}
