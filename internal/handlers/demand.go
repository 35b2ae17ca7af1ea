package handlers

import (
	"net/http"

	"github.com/agrisync/agrisync/internal/models"
	"github.com/agrisync/agrisync/internal/services"
	"github.com/gin-gonic/gin"
)

type DemandHandler struct {
	demandService *services.DemandService
}

func NewDemandHandler(demandService *services.DemandService) *DemandHandler {
	return &DemandHandler{demandService: demandService}
}

type AddDemandRequest struct {
	BuyerID          uint    `json:"buyer_id" binding:"required"`
	CropName         string  `json:"crop_name" binding:"required"`
	QuantityRequired float64 `json:"quantity_required" binding:"required,gt=0"`
}

type AddDemandResponse struct {
	Message  string `json:"message"`
	DemandID uint   `json:"demand_id"`
}

type DemandResponse struct {
	ID               uint    `json:"id"`
	BuyerID          uint    `json:"buyer_id"`
	CropName         string  `json:"crop_name"`
	QuantityRequired float64 `json:"quantity_required"`
	CreatedAt        string  `json:"created_at"`
}

// AddDemand godoc
// @Summary Post a demand
// @Tags demands
// @Accept json
// @Produce json
// @Param request body AddDemandRequest true "Demand listing"
// @Success 201 {object} AddDemandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /demands [post]
func (h *DemandHandler) AddDemand(c *gin.Context) {
	var req AddDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	demand, err := h.demandService.AddDemand(req.BuyerID, req.CropName, req.QuantityRequired)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AddDemandResponse{
		Message:  "demand added successfully",
		DemandID: demand.ID,
	})
}

// GetDemand godoc
// @Summary Get a demand
// @Tags demands
// @Produce json
// @Param id path int true "Demand ID"
// @Success 200 {object} DemandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /demands/{id} [get]
func (h *DemandHandler) GetDemand(c *gin.Context) {
	id, ok := parseID(c, "demand")
	if !ok {
		return
	}

	demand, err := h.demandService.GetDemand(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDemandResponse(demand))
}

// ListDemands godoc
// @Summary List demands
// @Tags demands
// @Produce json
// @Success 200 {array} DemandResponse
// @Failure 500 {object} ErrorResponse
// @Router /demands [get]
func (h *DemandHandler) ListDemands(c *gin.Context) {
	demands, err := h.demandService.ListDemands()
	if err != nil {
		writeServiceError(c, err)
		return
	}

	responses := make([]DemandResponse, len(demands))
	for i, demand := range demands {
		responses[i] = *toDemandResponse(&demand)
	}

	c.JSON(http.StatusOK, responses)
}

func toDemandResponse(demand *models.Demand) *DemandResponse {
	return &DemandResponse{
		ID:               demand.ID,
		BuyerID:          demand.BuyerID,
		CropName:         demand.CropName,
		QuantityRequired: demand.QuantityRequired,
		CreatedAt:        demand.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
