//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/handler/api"
	resdto "event-marketplace/internal/handler/dto/response"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/usecase/commands"
	"event-marketplace/internal/usecase/queries"
	"event-marketplace/tests/common/builder"
	"event-marketplace/tests/common/httptest"
	"event-marketplace/tests/common/testutil"
	commandsmock "event-marketplace/tests/mock/commands"
	queriesmock "event-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockMessages *commandsmock.MockMessageCommands
	mockQueries  *queriesmock.MockBookingQueries
	mockStats    *queriesmock.MockStatisticsQueries
	handler      *api.BookingHandler
	actorID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockMessages = commandsmock.NewMockMessageCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockStats = queriesmock.NewMockStatisticsQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockMessages, s.mockQueries, s.mockStats)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings/statistics", authMiddleware, s.handler.Statistics)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/bookings/:id", authMiddleware, s.handler.Update)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/bookings/:id/messages", authMiddleware, s.handler.SendMessage)
	s.router.GET("/bookings/:id/messages", authMiddleware, s.handler.ListMessages)
	s.router.GET("/bookings/:id/timeline", authMiddleware, s.handler.Timeline)
	s.router.GET("/events/:id/bookings", authMiddleware, s.handler.ListByEvent)
	s.router.GET("/vendor/bookings", authMiddleware, s.handler.ListByVendor)
	// route without auth to exercise the missing-actor branch
	s.router.GET("/public/bookings/:id", s.handler.Get)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()
	expectedResult := &commands.CreateBookingResult{BookingID: view.ID}

	bound := []testCaseBooking{
		{name: "requirements length OK (5000 chars)", mutate: testutil.Field("requirements", strings.Repeat("a", 5000)), expectCode: http.StatusCreated},
		{name: "requirements length invalid (5001 chars)", mutate: testutil.Field("requirements", strings.Repeat("a", 5001)), expectCode: http.StatusBadRequest},
		{name: "budget_min zero OK", mutate: testutil.Field("budget_min_cents", 0), expectCode: http.StatusCreated},
		{name: "budget_min negative", mutate: testutil.Field("budget_min_cents", -1), expectCode: http.StatusBadRequest},
		{name: "notes length invalid (2001 chars)", mutate: testutil.Field("additional_notes", strings.Repeat("n", 2001)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseBooking{
		{name: "missing field: event_id (required)", mutate: testutil.Field("event_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: service_listing_id (required)", mutate: testutil.Field("service_listing_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: service_date (required)", mutate: testutil.Field("service_date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: requirements (required)", mutate: testutil.Field("requirements", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: additional_notes (optional)", mutate: testutil.Field("additional_notes", nil), expectCode: http.StatusCreated},
	}

	malformed := []testCaseBooking{
		{name: "service_date wrong layout", mutate: testutil.Field("service_date", "15/06/2030"), expectCode: http.StatusBadRequest},
		{name: "service_date impossible day", mutate: testutil.Field("service_date", "2030-02-30"), expectCode: http.StatusBadRequest},
		{name: "event_id not a uuid", mutate: testutil.Field("event_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		{name: "empty requirements", mutate: testutil.Field("requirements", ""), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{bound, missing, malformed}

	s.Run("success: returns 201 Created with the booking view", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.actorID).
			DoAndReturn(func(_ any, req commands.CreateBookingRequest, _ uuid.UUID) (*commands.CreateBookingResult, error) {
				s.Equal(b.EventID, req.EventID)
				s.Equal(b.ServiceListingID, req.ServiceListingID)
				s.True(b.ServiceDate.Equal(req.ServiceDate))
				s.Equal(b.BudgetMaxCents, req.BudgetMaxCents)
				return expectedResult, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("PENDING", body.Status)
		s.Equal("2030-06-15", body.ServiceDate)
		s.Equal("Bright Kitchen", body.VendorBusinessName)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range allValidationTestCases {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(expectedResult, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(view, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "event not found", err: commands.ErrEventNotFound, expectCode: http.StatusNotFound, expectMsg: "Create booking failed"},
		{name: "event owned by someone else", err: commands.ErrEventNotOwned, expectCode: http.StatusForbidden},
		{name: "listing inactive", err: commands.ErrListingInactive, expectCode: http.StatusUnprocessableEntity},
		{name: "date unavailable", err: commands.ErrDateUnavailable, expectCode: http.StatusConflict},
		{name: "date already booked", err: commands.ErrDateAlreadyBooked, expectCode: http.StatusConflict},
		{name: "budget range rejected", err: errs.Mark(errs.New("budget_min_cents exceeds budget_max_cents"), errs.ErrValidation), expectCode: http.StatusBadRequest},
		{name: "unclassified failure", err: errs.New("connection reset"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actorID).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithQuote(650000).BuildView()

	s.Run("success: returns booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.QuotedPriceCents)
		s.Equal(int64(650000), *body.QuotedPriceCents)
		s.Equal(view.CreatedAt.Unix(), body.CreatedAt)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when booking is missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Get booking failed")
	})

	s.Run("error: 403 when caller is not a party", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).
			Return(nil, errs.Mark(errs.New("not a party to this booking"), errs.ErrForbidden))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 401 when no actor is on the context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public/bookings/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	view := builder.NewBookingBuilder().WithStatus(booking.StatusQuoteSent).WithQuote(700000).BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: status change is forwarded and fresh view returned", func() {
		s.mockCommands.EXPECT().
			UpdateStatus(gomock.Any(), view.ID, gomock.Any(), s.actorID).
			DoAndReturn(func(_ any, _ uuid.UUID, req commands.UpdateBookingRequest, _ uuid.UUID) error {
				s.Require().NotNil(req.Status)
				s.Equal("QUOTE_SENT", *req.Status)
				s.Require().NotNil(req.QuotedPriceCents)
				s.Equal(int64(700000), *req.QuotedPriceCents)
				s.Nil(req.FinalPriceCents)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).Return(view, nil)

		body := map[string]any{"status": "QUOTE_SENT", "quoted_price_cents": 700000}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("QUOTE_SENT", resp.Status)
	})

	s.Run("error: 400 on negative price", func() {
		body := map[string]any{"final_price_cents": -5}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "transition not allowed", err: errs.Mark(errs.New("PENDING -> COMPLETED"), errs.ErrInvalidTransition), expectCode: http.StatusUnprocessableEntity},
		{name: "role not permitted", err: errs.Mark(errs.New("only the vendor may send a quote"), errs.ErrRoleNotPermitted), expectCode: http.StatusForbidden},
		{name: "booking missing", err: commands.ErrBookingNotFound, expectCode: http.StatusNotFound},
		{name: "date taken on confirm", err: commands.ErrDateAlreadyBooked, expectCode: http.StatusConflict},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, gomock.Any(), s.actorID).Return(tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "CONFIRMED"}, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	view := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildView()
	url := "/bookings/" + view.ID.String() + "/cancel"

	s.Run("success: with reason", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID, "Venue closed", s.actorID).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "Venue closed"}, "bearer-token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("CANCELLED", resp.Status)
	})

	s.Run("success: empty body", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID, "", s.actorID).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 when already terminal", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID, "", s.actorID).
			Return(errs.Mark(errs.New("CANCELLED -> CANCELLED"), errs.ErrInvalidTransition))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Cancel booking failed")
	})
}

// ================================================================================
// TestListByEvent / TestListByVendor
// ================================================================================

func (s *BookingHandlerTestSuite) TestListByEvent() {
	eventID := uuid.New()
	url := "/events/" + eventID.String() + "/bookings"
	items := []*queries.BookingView{
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.EventID = eventID }).BuildView(),
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.EventID = eventID }).BuildView(),
	}

	s.Run("success: forwards filters and returns next cursor", func() {
		after := &queries.Cursor{After: "djE6MTIz"}
		next := &queries.Cursor{After: "djE6NDU2"}
		s.mockQueries.EXPECT().
			ListByEvent(gomock.Any(), eventID, s.actorID, gomock.Any(), after, 2).
			DoAndReturn(func(_ any, _, _ uuid.UUID, f queries.BookingFilters, _ *queries.Cursor, _ int) ([]*queries.BookingView, *queries.Cursor, error) {
				s.Require().NotNil(f.Status)
				s.Equal("PENDING", *f.Status)
				return items, next, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=PENDING&limit=2&after=djE6MTIz", nil, "bearer-token")

		var body struct {
			Bookings   []resdto.BookingResponse `json:"bookings"`
			NextCursor string                   `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 2)
		s.Equal("djE6NDU2", body.NextCursor)
	})

	s.Run("success: limit is clamped and last page has no cursor", func() {
		s.mockQueries.EXPECT().
			ListByEvent(gomock.Any(), eventID, s.actorID, queries.BookingFilters{}, nil, queries.MaxListLimit).
			Return(items[:1], nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=100000", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		_, hasCursor := body["next_cursor"]
		s.False(hasCursor)
	})

	s.Run("error: 400 on bad cursor", func() {
		s.mockQueries.EXPECT().
			ListByEvent(gomock.Any(), eventID, s.actorID, gomock.Any(), gomock.Any(), queries.DefaultListLimit).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "List event bookings failed")
	})

	s.Run("error: 403 when caller does not own event", func() {
		s.mockQueries.EXPECT().
			ListByEvent(gomock.Any(), eventID, s.actorID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrEventAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *BookingHandlerTestSuite) TestListByVendor() {
	s.Run("success: empty list", func() {
		s.mockQueries.EXPECT().
			ListByVendor(gomock.Any(), s.actorID, queries.BookingFilters{}, nil, queries.DefaultListLimit).
			Return([]*queries.BookingView{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/bookings", nil, "bearer-token")

		var body struct {
			Bookings []resdto.BookingResponse `json:"bookings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Bookings)
	})

	s.Run("error: 404 without vendor profile", func() {
		s.mockQueries.EXPECT().
			ListByVendor(gomock.Any(), s.actorID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrVendorProfileNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/bookings", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestMessages / TestTimeline
// ================================================================================

func (s *BookingHandlerTestSuite) TestMessages() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/messages"

	s.Run("success: send returns 201 with id", func() {
		msgID := uuid.New()
		s.mockMessages.EXPECT().Send(gomock.Any(), bookingID, "Can you do vegan options?", s.actorID).
			Return(&commands.SendMessageResult{MessageID: msgID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"content": "Can you do vegan options?"}, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(msgID.String(), body["id"])
	})

	s.Run("error: 400 on missing content", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 for outsiders", func() {
		s.mockMessages.EXPECT().Send(gomock.Any(), bookingID, "hi", s.actorID).
			Return(nil, errs.Mark(errs.New("not a party"), errs.ErrForbidden))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"content": "hi"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Send message failed")
	})

	s.Run("success: list keeps send order", func() {
		sent := time.Date(2030, 1, 12, 8, 0, 0, 0, time.UTC)
		msgs := []*queries.MessageView{
			{ID: uuid.New(), BookingID: bookingID, SenderID: s.actorID, SenderType: "ORGANIZER", Content: "first", SentAt: sent},
			{ID: uuid.New(), BookingID: bookingID, SenderID: uuid.New(), SenderType: "VENDOR", Content: "second", SentAt: sent.Add(time.Hour)},
		}
		s.mockQueries.EXPECT().ListMessages(gomock.Any(), bookingID, s.actorID).Return(msgs, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Messages []resdto.MessageResponse `json:"messages"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Messages, 2)
		s.Equal("first", body.Messages[0].Content)
		s.Equal("VENDOR", body.Messages[1].SenderType)
	})
}

func (s *BookingHandlerTestSuite) TestTimeline() {
	bookingID := uuid.New()
	created := time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)

	s.Run("success: returns derived entries", func() {
		entries := []*queries.TimelineEntry{
			{Type: queries.TimelineBookingCreated, Timestamp: created, Status: "PENDING"},
			{Type: queries.TimelineMessage, Timestamp: created.Add(time.Hour), Message: &queries.MessageView{ID: uuid.New(), BookingID: bookingID, Content: "hello", SentAt: created.Add(time.Hour)}},
		}
		s.mockQueries.EXPECT().GetTimeline(gomock.Any(), bookingID, s.actorID).Return(entries, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String()+"/timeline", nil, "bearer-token")

		var body struct {
			Timeline []resdto.TimelineEntryResponse `json:"timeline"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Timeline, 2)
		s.Equal(queries.TimelineBookingCreated, body.Timeline[0].Type)
		s.Require().NotNil(body.Timeline[1].Message)
		s.Equal("hello", body.Timeline[1].Message.Content)
	})

	s.Run("error: 404 when booking is missing", func() {
		s.mockQueries.EXPECT().GetTimeline(gomock.Any(), bookingID, s.actorID).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String()+"/timeline", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestStatistics
// ================================================================================

func (s *BookingHandlerTestSuite) TestStatistics() {
	stats := &queries.BookingStatistics{
		Scope:             queries.ScopeOrganizer,
		Total:             4,
		ByStatus:          map[string]int64{"COMPLETED": 2, "CANCELLED": 1, "PENDING": 1},
		ConversionRate:    50,
		CompletionRate:    50,
		CancellationRate:  25,
		TotalRevenueCents: 1200000,
	}

	s.Run("success: scope defaults to vendor", func() {
		s.mockStats.EXPECT().GetBookingStatistics(gomock.Any(), s.actorID, queries.ScopeVendor).
			Return(&queries.BookingStatistics{Scope: queries.ScopeVendor, ByStatus: map[string]int64{}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/statistics", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: organizer scope", func() {
		s.mockStats.EXPECT().GetBookingStatistics(gomock.Any(), s.actorID, queries.ScopeOrganizer).Return(stats, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/statistics?scope=organizer", nil, "bearer-token")

		var body resdto.BookingStatisticsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(4), body.Total)
		s.Equal(int64(2), body.ByStatus["COMPLETED"])
		s.InDelta(25.0, body.CancellationRate, 0.001)
		s.Equal(int64(1200000), body.TotalRevenueCents)
	})

	s.Run("error: 400 on unknown scope", func() {
		s.mockStats.EXPECT().GetBookingStatistics(gomock.Any(), s.actorID, "admin").Return(nil, queries.ErrInvalidScope)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/statistics?scope=admin", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Get statistics failed")
	})
}
