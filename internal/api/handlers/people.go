package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NolanFinn/Check-Splitter/internal/api/dto"
	"github.com/NolanFinn/Check-Splitter/internal/application/service"
)

// PeopleHandler handles person mutations and payer selection.
type PeopleHandler struct {
	svc *service.CheckService
}

// NewPeopleHandler creates a new people handler.
func NewPeopleHandler(svc *service.CheckService) *PeopleHandler {
	return &PeopleHandler{svc: svc}
}

// Add handles POST /api/check/people.
func (h *PeopleHandler) Add(c *gin.Context) {
	var req dto.AddPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	snap, err := h.svc.AddPerson(req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCheckResponse(snap))
}

// Remove handles DELETE /api/check/people/:name.
func (h *PeopleHandler) Remove(c *gin.Context) {
	snap, err := h.svc.RemovePerson(c.Param("name"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCheckResponse(snap))
}

// SetPayer handles PUT /api/check/payer.
func (h *PeopleHandler) SetPayer(c *gin.Context) {
	var req dto.SetPayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	snap, err := h.svc.SetPayer(req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCheckResponse(snap))
}
