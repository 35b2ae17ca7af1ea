package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/agrisync/agrisync/internal/middleware"
	"github.com/agrisync/agrisync/internal/services"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
	quoteService *services.QuoteService
}

func NewMatchHandler(matchService *services.MatchService, quoteService *services.QuoteService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		quoteService: quoteService,
	}
}

type MatchResponse struct {
	Matched               bool    `json:"matched"`
	Message               string  `json:"message"`
	DemandID              uint    `json:"demand_id"`
	FarmerID              uint    `json:"farmer_id,omitempty"`
	HarvestID             uint    `json:"harvest_id,omitempty"`
	HarvestScore          int     `json:"harvest_score,omitempty"`
	AvailableQuantity     float64 `json:"available_quantity,omitempty"`
	SuggestedPricePerUnit float64 `json:"suggested_price_per_unit,omitempty"`
	DaysRemaining         *int    `json:"days_remaining,omitempty"`
	Quote                 string  `json:"quote,omitempty"`
	QuoteExpiresAt        string  `json:"quote_expires_at,omitempty"`
}

type VerifyQuoteRequest struct {
	Quote string `json:"quote" binding:"required"`
}

type VerifyQuoteResponse struct {
	Valid         bool    `json:"valid"`
	QuoteID       string  `json:"quote_id"`
	DemandID      uint    `json:"demand_id"`
	HarvestID     uint    `json:"harvest_id"`
	FarmerID      uint    `json:"farmer_id"`
	PricePerUnit  float64 `json:"price_per_unit"`
	DaysRemaining int     `json:"days_remaining"`
	ExpiresAt     string  `json:"expires_at"`
}

// MatchDemand godoc
// @Summary Match a demand to the best harvest
// @Description Select the eligible harvest with the highest urgency score and suggest a price per unit. An empty candidate set is reported with matched=false, not as an error. The harvest is not reserved.
// @Tags matching
// @Produce json
// @Param id path int true "Demand ID"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /demands/{id}/match [post]
func (h *MatchHandler) MatchDemand(c *gin.Context) {
	id, ok := parseID(c, "demand")
	if !ok {
		return
	}

	result, err := h.matchService.MatchDemand(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if result == nil {
		c.JSON(http.StatusOK, MatchResponse{
			Matched:  false,
			Message:  "no matching harvest found",
			DemandID: id,
		})
		return
	}

	quote, claims, err := h.quoteService.Issue(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to sign quote: " + err.Error()})
		return
	}

	log.Printf("[Match] request %s: demand %d quoted as %s", middleware.GetRequestID(c), result.DemandID, claims.ID)
	c.Header("X-Quote-ID", claims.ID)
	daysRemaining := result.DaysRemaining
	c.JSON(http.StatusOK, MatchResponse{
		Matched:               true,
		Message:               "best match found",
		DemandID:              result.DemandID,
		FarmerID:              result.FarmerID,
		HarvestID:             result.HarvestID,
		HarvestScore:          result.UrgencyScore,
		AvailableQuantity:     result.AvailableQuantity,
		SuggestedPricePerUnit: result.SuggestedPricePerUnit,
		DaysRemaining:         &daysRemaining,
		Quote:                 quote,
		QuoteExpiresAt:        claims.ExpiresAt.Time.UTC().Format("2006-01-02T15:04:05Z"),
	})
}

// VerifyQuote godoc
// @Summary Verify a price quote
// @Description Check the signature and expiry of a quote returned by the match endpoint.
// @Tags matching
// @Accept json
// @Produce json
// @Param request body VerifyQuoteRequest true "Quote token"
// @Success 200 {object} VerifyQuoteResponse
// @Failure 400 {object} ErrorResponse
// @Router /quotes/verify [post]
func (h *MatchHandler) VerifyQuote(c *gin.Context) {
	var req VerifyQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	claims, err := h.quoteService.Verify(req.Quote)
	if err != nil {
		if errors.Is(err, services.ErrQuoteExpired) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quote expired"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quote"})
		return
	}

	c.JSON(http.StatusOK, VerifyQuoteResponse{
		Valid:         true,
		QuoteID:       claims.ID,
		DemandID:      claims.DemandID,
		HarvestID:     claims.HarvestID,
		FarmerID:      claims.FarmerID,
		PricePerUnit:  claims.PricePerUnit,
		DaysRemaining: claims.DaysRemaining,
		ExpiresAt:     claims.ExpiresAt.Time.UTC().Format("2006-01-02T15:04:05Z"),
	})
}
