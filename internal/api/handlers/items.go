package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NolanFinn/Check-Splitter/internal/api/dto"
	"github.com/NolanFinn/Check-Splitter/internal/application/service"
)

// ItemsHandler handles item mutations.
type ItemsHandler struct {
	svc *service.CheckService
}

// NewItemsHandler creates a new items handler.
func NewItemsHandler(svc *service.CheckService) *ItemsHandler {
	return &ItemsHandler{svc: svc}
}

// Add handles POST /api/check/items.
func (h *ItemsHandler) Add(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	snap, err := h.svc.AddItem(req.Description, req.Quantity, req.Price)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCheckResponse(snap))
}

// Update handles PUT /api/check/items/:id.
func (h *ItemsHandler) Update(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	snap, err := h.svc.UpdateItem(c.Param("id"), req.Description, req.Quantity, req.Price)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCheckResponse(snap))
}

// Remove handles DELETE /api/check/items/:id.
func (h *ItemsHandler) Remove(c *gin.Context) {
	snap, err := h.svc.RemoveItem(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCheckResponse(snap))
}

// ToggleAssignee handles POST /api/check/items/:id/assignees/:person.
// It flips whether the person shares the item's cost.
func (h *ItemsHandler) ToggleAssignee(c *gin.Context) {
	snap, err := h.svc.ToggleAssignment(c.Param("id"), c.Param("person"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCheckResponse(snap))
}
