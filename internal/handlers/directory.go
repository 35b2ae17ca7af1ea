package handlers

import (
	"net/http"

	"github.com/agrisync/agrisync/internal/services"
	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	directoryService *services.DirectoryService
}

func NewDirectoryHandler(directoryService *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

type RegisterPartyRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Location string `json:"location" binding:"required"`
}

type RegisterFarmerResponse struct {
	Message  string `json:"message"`
	FarmerID uint   `json:"farmer_id"`
}

type RegisterBuyerResponse struct {
	Message string `json:"message"`
	BuyerID uint   `json:"buyer_id"`
}

type PartyResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	CreatedAt string `json:"created_at"`
}

// RegisterFarmer godoc
// @Summary Register a farmer
// @Tags directory
// @Accept json
// @Produce json
// @Param request body RegisterPartyRequest true "Farmer details"
// @Success 201 {object} RegisterFarmerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /farmers [post]
func (h *DirectoryHandler) RegisterFarmer(c *gin.Context) {
	var req RegisterPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	farmer, err := h.directoryService.RegisterFarmer(req.Name, req.Phone, req.Location)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterFarmerResponse{
		Message:  "farmer registered successfully",
		FarmerID: farmer.ID,
	})
}

// GetFarmer godoc
// @Summary Get a farmer
// @Tags directory
// @Produce json
// @Param id path int true "Farmer ID"
// @Success 200 {object} PartyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /farmers/{id} [get]
func (h *DirectoryHandler) GetFarmer(c *gin.Context) {
	id, ok := parseID(c, "farmer")
	if !ok {
		return
	}

	farmer, err := h.directoryService.GetFarmer(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PartyResponse{
		ID:        farmer.ID,
		Name:      farmer.Name,
		Phone:     farmer.Phone,
		Location:  farmer.Location,
		CreatedAt: farmer.CreatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

// RegisterBuyer godoc
// @Summary Register a buyer
// @Tags directory
// @Accept json
// @Produce json
// @Param request body RegisterPartyRequest true "Buyer details"
// @Success 201 {object} RegisterBuyerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /buyers [post]
func (h *DirectoryHandler) RegisterBuyer(c *gin.Context) {
	var req RegisterPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	buyer, err := h.directoryService.RegisterBuyer(req.Name, req.Phone, req.Location)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterBuyerResponse{
		Message: "buyer registered successfully",
		BuyerID: buyer.ID,
	})
}

// GetBuyer godoc
// @Summary Get a buyer
// @Tags directory
// @Produce json
// @Param id path int true "Buyer ID"
// @Success 200 {object} PartyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /buyers/{id} [get]
func (h *DirectoryHandler) GetBuyer(c *gin.Context) {
	id, ok := parseID(c, "buyer")
	if !ok {
		return
	}

	buyer, err := h.directoryService.GetBuyer(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PartyResponse{
		ID:        buyer.ID,
		Name:      buyer.Name,
		Phone:     buyer.Phone,
		Location:  buyer.Location,
		CreatedAt: buyer.CreatedAt.Format("2006-01-02T15:04:05Z"),
	})
}
