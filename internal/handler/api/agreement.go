package api

import (
	"context"
	"net/http"

	reqdto "event-marketplace/internal/handler/dto/request"
	resdto "event-marketplace/internal/handler/dto/response"
	"event-marketplace/internal/handler/httperr"
	"event-marketplace/internal/usecase/commands"
	"event-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AgreementHandler struct {
	cmds commands.AgreementCommands
	q    queries.AgreementQueries
}

func NewAgreementHandler(cmds commands.AgreementCommands, q queries.AgreementQueries) *AgreementHandler {
	return &AgreementHandler{cmds: cmds, q: q}
}

// @Summary Generate service agreement
// @Description Create the agreement for a booking whose quote was accepted. Missing content comes from the category template.
// @Tags agreements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.GenerateAgreementRequest false "Custom content"
// @Success 201 {object} resdto.AgreementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/agreement [post]
func (h *AgreementHandler) Generate(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.GenerateAgreementRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Generate(c.Request.Context(), bookingID, cmd, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Generate agreement failed")
		return
	}
	h.respond(c, http.StatusCreated, result.AgreementID, userID)
}

// @Summary Get booking agreement
// @Tags agreements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.AgreementResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/agreement [get]
func (h *AgreementHandler) GetByBooking(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	a, err := h.q.GetByBookingID(c.Request.Context(), bookingID, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Get agreement failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAgreement(a))
}

// @Summary Get agreement
// @Tags agreements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Success 200 {object} resdto.AgreementResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/agreements/{id} [get]
func (h *AgreementHandler) Get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id, userID)
}

// @Summary Update agreement
// @Description Replace agreement content. Rejected once both parties signed.
// @Tags agreements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Param request body reqdto.UpdateAgreementRequest true "Content patch"
// @Success 200 {object} resdto.AgreementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/agreements/{id} [patch]
func (h *AgreementHandler) Update(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid request")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, cmd, userID); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update agreement failed")
		return
	}
	h.respond(c, http.StatusOK, id, userID)
}

// @Summary Sign agreement
// @Description Record the caller's signature. The second signature confirms the booking.
// @Tags agreements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Param request body reqdto.SignAgreementRequest true "Signature"
// @Success 200 {object} resdto.SignAgreementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/agreements/{id}/sign [post]
func (h *AgreementHandler) Sign(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SignAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Sign(c.Request.Context(), id, req.ToCommand(), userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Sign agreement failed")
		return
	}
	resp := resdto.SignAgreementResponse{FullySigned: result.FullySigned}
	if result.SignedAt != nil {
		v := result.SignedAt.Unix()
		resp.SignedAt = &v
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update deliverable status
// @Tags agreements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Param itemId path string true "Deliverable ID"
// @Param request body reqdto.ItemStatusRequest true "PENDING, IN_PROGRESS, COMPLETED or OVERDUE"
// @Success 200 {object} resdto.AgreementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/agreements/{id}/deliverables/{itemId} [patch]
func (h *AgreementHandler) UpdateDeliverable(c *gin.Context) {
	h.setItemStatus(c, h.cmds.SetDeliverableStatus, "Update deliverable failed")
}

// @Summary Update payment milestone status
// @Tags agreements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Param itemId path string true "Milestone ID"
// @Param request body reqdto.ItemStatusRequest true "PENDING, PAID or OVERDUE"
// @Success 200 {object} resdto.AgreementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/agreements/{id}/milestones/{itemId} [patch]
func (h *AgreementHandler) UpdateMilestone(c *gin.Context) {
	h.setItemStatus(c, h.cmds.SetMilestoneStatus, "Update milestone failed")
}

// @Summary Agreement progress
// @Tags agreements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Success 200 {object} resdto.AgreementProgressResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/agreements/{id}/progress [get]
func (h *AgreementHandler) Progress(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	p, err := h.q.GetProgress(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Get progress failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAgreementProgress(p))
}

type itemStatusSetter func(ctx context.Context, agreementID, itemID uuid.UUID, status string, actorID uuid.UUID) error

func (h *AgreementHandler) setItemStatus(c *gin.Context, set itemStatusSetter, failMsg string) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.ItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := set(c.Request.Context(), id, itemID, req.Status, userID); err != nil {
		httperr.AbortWithUseCaseError(c, err, failMsg)
		return
	}
	h.respond(c, http.StatusOK, id, userID)
}

func (h *AgreementHandler) respond(c *gin.Context, status int, id, userID uuid.UUID) {
	a, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load agreement")
		return
	}
	c.JSON(status, resdto.FromAgreement(a))
}
