// Package handlers contains the HTTP handlers for the check API. Every
// mutating handler validates through the service, then answers with the
// updated state plus freshly computed shares.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NolanFinn/Check-Splitter/internal/api/dto"
	"github.com/NolanFinn/Check-Splitter/internal/application/service"
)

// CheckHandler serves the check state and whole-check operations.
type CheckHandler struct {
	svc *service.CheckService
}

// NewCheckHandler creates a new check handler.
func NewCheckHandler(svc *service.CheckService) *CheckHandler {
	return &CheckHandler{svc: svc}
}

// Get handles GET /api/check - returns state plus computed shares.
func (h *CheckHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewCheckResponse(h.svc.Get()))
}

// Reset handles POST /api/check/reset - discards the check and starts fresh.
func (h *CheckHandler) Reset(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewCheckResponse(h.svc.Reset()))
}

// SetSurcharges handles PUT /api/check/surcharges.
func (h *CheckHandler) SetSurcharges(c *gin.Context) {
	var req dto.SetSurchargesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	snap, err := h.svc.SetSurcharges(req.TaxAmount, req.TipAmount, req.FeeAmount)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCheckResponse(snap))
}
