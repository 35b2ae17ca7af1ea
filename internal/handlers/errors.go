package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agrisync/agrisync/internal/services"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func parseID(c *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + entity + " ID"})
		return 0, false
	}
	return uint(id), true
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFarmerNotFound),
		errors.Is(err, services.ErrBuyerNotFound),
		errors.Is(err, services.ErrHarvestNotFound),
		errors.Is(err, services.ErrDemandNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidCrop):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
