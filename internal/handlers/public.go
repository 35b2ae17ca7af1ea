package handlers

import (
	"net/http"

	"github.com/agrisync/agrisync/internal/services"
	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	dashboardService *services.DashboardService
}

func NewPublicHandler(dashboardService *services.DashboardService) *PublicHandler {
	return &PublicHandler{dashboardService: dashboardService}
}

type StatusResponse struct {
	Message string `json:"message"`
}

// Home godoc
// @Summary Service banner
// @Tags public
// @Produce json
// @Success 200 {object} StatusResponse
// @Router / [get]
func (h *PublicHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Message: "AgriSync backend is running"})
}

// GetDashboard godoc
// @Summary Marketplace totals
// @Description Count registered farmers and buyers and recorded harvests and demands
// @Tags public
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *PublicHandler) GetDashboard(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
