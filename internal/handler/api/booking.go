package api

import (
	"net/http"

	reqdto "event-marketplace/internal/handler/dto/request"
	resdto "event-marketplace/internal/handler/dto/response"
	"event-marketplace/internal/handler/httperr"
	"event-marketplace/internal/usecase/commands"
	"event-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds  commands.BookingCommands
	msgs  commands.MessageCommands
	q     queries.BookingQueries
	stats queries.StatisticsQueries
}

func NewBookingHandler(cmds commands.BookingCommands, msgs commands.MessageCommands, q queries.BookingQueries, stats queries.StatisticsQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, msgs: msgs, q: q, stats: stats}
}

// @Summary Create booking request
// @Description Organizer requests a vendor's listing for one of their events
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), cmd, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create booking failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.BookingID, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking visible to its organizer or vendor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Get booking failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking
// @Description Change status, prices or notes. Status changes follow the booking state machine.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), id, cmd, userID); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update booking failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Either party cancels a booking that is not yet terminal
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	if err := h.cmds.Cancel(c.Request.Context(), id, req.Reason, userID); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Cancel booking failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List event bookings
// @Description List bookings of an event owned by the caller, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param status query string false "Booking status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/bookings [get]
func (h *BookingHandler) ListByEvent(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	eventID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByEvent(c.Request.Context(), eventID, userID, statusFilter(c), cursor, limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List event bookings failed")
		return
	}
	resp := gin.H{"bookings": resdto.FromBookingList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List vendor bookings
// @Description List bookings addressed to the caller's vendor profile, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/vendor/bookings [get]
func (h *BookingHandler) ListByVendor(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByVendor(c.Request.Context(), userID, statusFilter(c), cursor, limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List vendor bookings failed")
		return
	}
	resp := gin.H{"bookings": resdto.FromBookingList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Send booking message
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/messages [post]
func (h *BookingHandler) SendMessage(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.msgs.Send(c.Request.Context(), id, req.Content, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Send message failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": result.MessageID.String()})
}

// @Summary List booking messages
// @Description Messages in send order
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/messages [get]
func (h *BookingHandler) ListMessages(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	items, err := h.q.ListMessages(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List messages failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": resdto.FromMessageList(items)})
}

// @Summary Booking timeline
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.TimelineEntryResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/timeline [get]
func (h *BookingHandler) Timeline(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	entries, err := h.q.GetTimeline(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Get timeline failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeline": resdto.FromTimeline(entries)})
}

// @Summary Booking statistics
// @Description Counts and rates for the caller as vendor or organizer
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param scope query string false "vendor or organizer (default vendor)"
// @Success 200 {object} resdto.BookingStatisticsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/statistics [get]
func (h *BookingHandler) Statistics(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	scope := c.DefaultQuery("scope", queries.ScopeVendor)
	stats, err := h.stats.GetBookingStatistics(c.Request.Context(), userID, scope)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Get statistics failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingStatistics(stats))
}
