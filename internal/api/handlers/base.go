package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NolanFinn/Check-Splitter/internal/api/dto"
	"github.com/NolanFinn/Check-Splitter/internal/domain/check"
)

// RespondError maps a domain validation error to a structured JSON error
// with the right status code.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, check.ErrItemNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundError("item"))
	case errors.Is(err, check.ErrUnknownPerson):
		c.JSON(http.StatusNotFound, dto.NotFoundError("person"))
	case errors.Is(err, check.ErrDuplicatePerson),
		errors.Is(err, check.ErrLastPerson):
		c.JSON(http.StatusConflict, dto.ConflictError(err.Error()))
	case errors.Is(err, check.ErrEmptyDescription),
		errors.Is(err, check.ErrInvalidQuantity),
		errors.Is(err, check.ErrInvalidPrice),
		errors.Is(err, check.ErrEmptyName),
		errors.Is(err, check.ErrNegativeAmount):
		c.JSON(http.StatusBadRequest, dto.ValidationError(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalError())
	}
}
