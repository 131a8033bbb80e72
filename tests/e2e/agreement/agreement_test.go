//go:build e2e

package agreement_test

import (
	"fmt"
	"net/http"
	"testing"

	resdto "event-marketplace/internal/handler/dto/response"
	"event-marketplace/tests/common/dbtest"
	"event-marketplace/tests/common/httptest"
	"event-marketplace/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingAgreementURL = "/api/bookings/%s/agreement"
	signURL             = "/api/agreements/%s/sign"
	progressURL         = "/api/agreements/%s/progress"
	deliverableURL      = "/api/agreements/%s/deliverables/%s"
	milestoneURL        = "/api/agreements/%s/milestones/%s"
	templatesURL        = "/api/agreement-templates"
)

type AgreementSuite struct {
	e2e.SharedSuite
}

func TestAgreementSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AgreementSuite))
}

func (s *AgreementSuite) generate(t *testing.T, m e2e.Marketplace, bookingID string, body any) resdto.AgreementResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingAgreementURL, bookingID), body, m.OrganizerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var a resdto.AgreementResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &a))
	return a
}

func (s *AgreementSuite) sign(t *testing.T, agreementID, token, signatureType string) (int, resdto.SignAgreementResponse) {
	t.Helper()

	body := map[string]any{"signature_type": signatureType, "signature": "signed-by-" + signatureType}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(signURL, agreementID), body, token)

	var res resdto.SignAgreementResponse
	if w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	}
	return w.Code, res
}

// =============================================================================
// TestGenerate
// =============================================================================

func (s *AgreementSuite) TestGenerate() {
	s.Run("Normal case: category template fills the agreement", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "photography", nil)
		created := s.CreateBooking(t, m, "2030-06-15")
		s.AdvanceToQuoteAccepted(t, m, created.ID, 400000)

		a := s.generate(t, m, created.ID, nil)

		assert.Equal(t, created.ID, a.BookingID)
		assert.NotEmpty(t, a.Terms)
		assert.NotEmpty(t, a.Deliverables)
		assert.NotEmpty(t, a.PaymentSchedule)
		assert.False(t, a.IsFullySigned)
		for _, d := range a.Deliverables {
			assert.Equal(t, "PENDING", d.Status)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingAgreementURL, created.ID), nil, m.VendorToken)
		var fetched resdto.AgreementResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		assert.Equal(t, a.ID, fetched.ID)
	})

	s.Run("Normal case: custom content replaces the template", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "catering", nil)
		created := s.CreateBooking(t, m, "2030-06-15")
		s.AdvanceToQuoteAccepted(t, m, created.ID, 500000)

		a := s.generate(t, m, created.ID, map[string]any{
			"terms": "Custom catering terms",
			"deliverables": []map[string]any{
				{"title": "Tasting", "due_date": "2030-05-01"},
			},
			"payment_schedule": []map[string]any{
				{"title": "Deposit", "amount_cents": 250000, "due_date": "2030-03-01"},
				{"title": "Balance", "amount_cents": 250000, "due_date": "2030-06-15"},
			},
		})

		assert.Equal(t, "Custom catering terms", a.Terms)
		require.Len(t, a.Deliverables, 1)
		assert.Equal(t, "2030-05-01", a.Deliverables[0].DueDate)
		require.Len(t, a.PaymentSchedule, 2)
		assert.Equal(t, int64(250000), a.PaymentSchedule[1].AmountCents)
	})

	s.Run("Error case: booking must have an accepted quote", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "catering", nil)
		created := s.CreateBooking(t, m, "2030-06-15")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingAgreementURL, created.ID), nil, m.OrganizerToken)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: second agreement for one booking", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "catering", nil)
		created := s.CreateBooking(t, m, "2030-06-15")
		s.AdvanceToQuoteAccepted(t, m, created.ID, 500000)
		s.generate(t, m, created.ID, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingAgreementURL, created.ID), nil, m.OrganizerToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Normal case: template catalog is listed", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "catering", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, templatesURL, nil, m.VendorToken)
		var body struct {
			Templates []resdto.AgreementTemplateResponse `json:"templates"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Len(t, body.Templates, 3)
	})
}

// =============================================================================
// TestSigning
// =============================================================================

func (s *AgreementSuite) TestSigning() {
	s.Run("Normal case: second signature confirms the booking", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "catering", nil)
		created := s.CreateBooking(t, m, "2030-06-15")
		s.AdvanceToQuoteAccepted(t, m, created.ID, 500000)
		a := s.generate(t, m, created.ID, nil)

		code, res := s.sign(t, a.ID, m.VendorToken, "VENDOR")
		require.Equal(t, http.StatusOK, code)
		assert.False(t, res.FullySigned)
		dbtest.AssertBookingStatus(t, s.DB, uuid.MustParse(created.ID), "QUOTE_ACCEPTED")

		code, res = s.sign(t, a.ID, m.OrganizerToken, "ORGANIZER")
		require.Equal(t, http.StatusOK, code)
		assert.True(t, res.FullySigned)
		require.NotNil(t, res.SignedAt)

		dbtest.AssertBookingStatus(t, s.DB, uuid.MustParse(created.ID), "CONFIRMED")
		_, bookings := dbtest.ListingCounters(t, s.DB, m.ListingID)
		assert.Equal(t, 1, bookings)

		// content is frozen once both parties signed
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(e2e.AgreementURL, a.ID), map[string]any{"terms": "late edit"}, m.OrganizerToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: signing for the other party", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "catering", nil)
		created := s.CreateBooking(t, m, "2030-06-15")
		s.AdvanceToQuoteAccepted(t, m, created.ID, 500000)
		a := s.generate(t, m, created.ID, nil)

		code, _ := s.sign(t, a.ID, m.VendorToken, "ORGANIZER")
		assert.Equal(t, http.StatusForbidden, code)
	})

	s.Run("Error case: signing twice", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "catering", nil)
		created := s.CreateBooking(t, m, "2030-06-15")
		s.AdvanceToQuoteAccepted(t, m, created.ID, 500000)
		a := s.generate(t, m, created.ID, nil)

		code, _ := s.sign(t, a.ID, m.OrganizerToken, "ORGANIZER")
		require.Equal(t, http.StatusOK, code)
		code, _ = s.sign(t, a.ID, m.OrganizerToken, "ORGANIZER")
		assert.Equal(t, http.StatusConflict, code)
	})

	s.Run("Error case: confirmation fails when the date was taken meanwhile", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "catering", nil)
		first := s.CreateBooking(t, m, "2030-06-15")
		second := s.CreateBooking(t, m, "2030-06-15")
		s.AdvanceToQuoteAccepted(t, m, first.ID, 500000)
		s.AdvanceToQuoteAccepted(t, m, second.ID, 520000)

		a := s.generate(t, m, second.ID, nil)
		s.Transition(t, first.ID, m.OrganizerToken, map[string]any{"status": "CONFIRMED"}, http.StatusOK)

		code, _ := s.sign(t, a.ID, m.VendorToken, "VENDOR")
		require.Equal(t, http.StatusOK, code)
		code, _ = s.sign(t, a.ID, m.OrganizerToken, "ORGANIZER")
		assert.Equal(t, http.StatusConflict, code)

		// the whole signing transaction rolled back
		dbtest.AssertBookingStatus(t, s.DB, uuid.MustParse(second.ID), "QUOTE_ACCEPTED")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(e2e.AgreementURL, a.ID), nil, m.OrganizerToken)
		var fetched resdto.AgreementResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		assert.Nil(t, fetched.OrganizerSignature)
		assert.NotNil(t, fetched.VendorSignature)
	})
}

// =============================================================================
// TestProgress
// =============================================================================

func (s *AgreementSuite) TestProgress() {
	s.Run("Normal case: item updates roll up into progress", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "catering", nil)
		created := s.CreateBooking(t, m, "2030-06-15")
		s.AdvanceToQuoteAccepted(t, m, created.ID, 500000)
		a := s.generate(t, m, created.ID, map[string]any{
			"deliverables": []map[string]any{
				{"title": "Tasting", "due_date": "2030-05-01"},
				{"title": "Service", "due_date": "2030-06-15"},
			},
			"payment_schedule": []map[string]any{
				{"title": "Deposit", "amount_cents": 200000, "due_date": "2030-03-01"},
				{"title": "Balance", "amount_cents": 300000, "due_date": "2030-06-15"},
			},
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(deliverableURL, a.ID, a.Deliverables[0].ID),
			map[string]any{"status": "COMPLETED"}, m.VendorToken)
		var updated resdto.AgreementResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		assert.Equal(t, "COMPLETED", updated.Deliverables[0].Status)
		assert.NotNil(t, updated.Deliverables[0].CompletedAt)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(milestoneURL, a.ID, a.PaymentSchedule[0].ID),
			map[string]any{"status": "PAID"}, m.OrganizerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(progressURL, a.ID), nil, m.OrganizerToken)
		var p resdto.AgreementProgressResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &p)
		assert.Equal(t, 2, p.Deliverables.Total)
		assert.Equal(t, 1, p.Deliverables.Completed)
		assert.InDelta(t, 50.0, p.Deliverables.CompletionPercentage, 0.001)
		assert.Equal(t, int64(500000), p.Payments.TotalAmountCents)
		assert.Equal(t, int64(200000), p.Payments.PaidAmountCents)
		assert.InDelta(t, 40.0, p.Payments.PaidPercentage, 0.001)
	})

	s.Run("Error case: unknown item", func() {
		t := s.T()
		m := s.SeedMarketplace(t, "catering", nil)
		created := s.CreateBooking(t, m, "2030-06-15")
		s.AdvanceToQuoteAccepted(t, m, created.ID, 500000)
		a := s.generate(t, m, created.ID, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(deliverableURL, a.ID, uuid.New()),
			map[string]any{"status": "COMPLETED"}, m.VendorToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
