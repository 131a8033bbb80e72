package api

import (
	"net/http"

	resdto "event-marketplace/internal/handler/dto/response"
	"event-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	q queries.TemplateQueries
}

func NewTemplateHandler(q queries.TemplateQueries) *TemplateHandler {
	return &TemplateHandler{q: q}
}

// @Summary List agreement templates
// @Tags agreements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AgreementTemplateResponse
// @Router /api/agreement-templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": resdto.FromTemplates(h.q.List())})
}
