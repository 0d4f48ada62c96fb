package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/application/service"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/presentation/http/dto/request"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/presentation/http/dto/response"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/pricing"
)

// PricingHandler handles stateless pricing HTTP requests
type PricingHandler struct {
	pricingService *service.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// Quote computes a full settlement breakdown without persisting anything.
// Clients call it again on every cart, discount, exchange or split change.
// @Summary Settlement Quote
// @Tags pricing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.QuoteRequest true "Quote inputs"
// @Success 200 {object} response.APIResponse
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.pricingService.Quote(c.Request.Context(), &service.QuoteInput{
		Lines:      toQuoteLines(req.Lines),
		GSTPercent: req.GSTPercent,
		Discount:   req.Discount,
		Exchange:   req.Exchange,
		Split:      req.Split,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote computed successfully", result)
}

// Calculate computes a product price from gross weight and making percentage
// @Summary Gross Price Calculator
// @Tags pricing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /pricing/calculate [post]
func (h *PricingHandler) Calculate(c *gin.Context) {
	var req pricing.GrossPriceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result := h.pricingService.CalculateGrossPrice(req)
	response.OK(c, "Price calculated successfully", result)
}

// toQuoteLines converts request lines into service inputs
func toQuoteLines(lines []request.QuoteLineRequest) []service.QuoteLineInput {
	out := make([]service.QuoteLineInput, 0, len(lines))
	for _, line := range lines {
		out = append(out, service.QuoteLineInput{
			ProductID:         line.ProductID,
			Quantity:          line.Quantity,
			TotalWeightGrams:  line.TotalWeightGrams,
			LessWeightGrams:   line.LessWeightGrams,
			MaterialType:      line.MaterialType,
			MakingRatePerGram: line.MakingRatePerGram,
			HasStones:         line.HasStones,
			StoneCaratWeight:  line.StoneCaratWeight,
			StoneRatePerCarat: line.StoneRatePerCarat,
			StoneQuantity:     line.StoneQuantity,
			VACharges:         line.VACharges,
		})
	}
	return out
}
