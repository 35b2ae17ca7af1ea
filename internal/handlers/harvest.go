package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/agrisync/agrisync/internal/models"
	"github.com/agrisync/agrisync/internal/repository"
	"github.com/agrisync/agrisync/internal/services"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type HarvestHandler struct {
	harvestService *services.HarvestService
}

func NewHarvestHandler(harvestService *services.HarvestService) *HarvestHandler {
	return &HarvestHandler{harvestService: harvestService}
}

type AddHarvestRequest struct {
	FarmerID            uint    `json:"farmer_id" binding:"required"`
	CropName            string  `json:"crop_name" binding:"required"`
	Quantity            float64 `json:"quantity" binding:"required,gt=0"`
	ExpectedHarvestDate string  `json:"expected_harvest_date" binding:"required,datetime=2006-01-02"`
}

type AddHarvestResponse struct {
	Message       string `json:"message"`
	HarvestID     uint   `json:"harvest_id"`
	HarvestScore  int    `json:"harvest_score"`
	DaysRemaining int    `json:"days_remaining"`
}

type HarvestResponse struct {
	ID                  uint    `json:"id"`
	FarmerID            uint    `json:"farmer_id"`
	CropName            string  `json:"crop_name"`
	Quantity            float64 `json:"quantity"`
	ExpectedHarvestDate string  `json:"expected_harvest_date"`
	HarvestScore        int     `json:"harvest_score"`
	CreatedAt           string  `json:"created_at"`
}

// AddHarvest godoc
// @Summary Add a harvest listing
// @Description Record an expected harvest for a registered farmer. The urgency score is computed from the days remaining today and stored with the listing.
// @Tags harvests
// @Accept json
// @Produce json
// @Param request body AddHarvestRequest true "Harvest listing"
// @Success 201 {object} AddHarvestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /harvests [post]
func (h *HarvestHandler) AddHarvest(c *gin.Context) {
	var req AddHarvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	expected, err := time.Parse(dateLayout, req.ExpectedHarvestDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "expected_harvest_date must be YYYY-MM-DD"})
		return
	}

	harvest, daysRemaining, err := h.harvestService.AddHarvest(req.FarmerID, req.CropName, req.Quantity, expected)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AddHarvestResponse{
		Message:       "harvest added successfully",
		HarvestID:     harvest.ID,
		HarvestScore:  harvest.HarvestScore,
		DaysRemaining: daysRemaining,
	})
}

// GetHarvest godoc
// @Summary Get a harvest listing
// @Tags harvests
// @Produce json
// @Param id path int true "Harvest ID"
// @Success 200 {object} HarvestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /harvests/{id} [get]
func (h *HarvestHandler) GetHarvest(c *gin.Context) {
	id, ok := parseID(c, "harvest")
	if !ok {
		return
	}

	harvest, err := h.harvestService.GetHarvest(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toHarvestResponse(harvest))
}

// ListHarvests godoc
// @Summary List harvest listings
// @Tags harvests
// @Produce json
// @Param crop query string false "Exact crop name"
// @Param min_quantity query number false "Minimum available quantity"
// @Success 200 {array} HarvestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /harvests [get]
func (h *HarvestHandler) ListHarvests(c *gin.Context) {
	filter := repository.HarvestFilter{CropName: c.Query("crop")}

	if minStr := c.Query("min_quantity"); minStr != "" {
		minQuantity, err := strconv.ParseFloat(minStr, 64)
		if err != nil || minQuantity < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_quantity"})
			return
		}
		filter.MinQuantity = minQuantity
	}

	harvests, err := h.harvestService.ListHarvests(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	responses := make([]HarvestResponse, len(harvests))
	for i, harvest := range harvests {
		responses[i] = *toHarvestResponse(&harvest)
	}

	c.JSON(http.StatusOK, responses)
}

func toHarvestResponse(harvest *models.Harvest) *HarvestResponse {
	return &HarvestResponse{
		ID:                  harvest.ID,
		FarmerID:            harvest.FarmerID,
		CropName:            harvest.CropName,
		Quantity:            harvest.Quantity,
		ExpectedHarvestDate: harvest.ExpectedHarvestDate.Format(dateLayout),
		HarvestScore:        harvest.HarvestScore,
		CreatedAt:           harvest.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
