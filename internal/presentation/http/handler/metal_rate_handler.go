package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/application/service"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/presentation/http/dto/response"
)

// MetalRateHandler handles rate-management HTTP requests
type MetalRateHandler struct {
	rateService *service.MetalRateService
}

// NewMetalRateHandler creates a new metal rate handler
func NewMetalRateHandler(rateService *service.MetalRateService) *MetalRateHandler {
	return &MetalRateHandler{rateService: rateService}
}

// Upsert handles creating or updating a rate entry
// @Summary Upsert Metal Rate
// @Description Create a rate entry or update the price of an existing one
// @Tags rates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /rates [post]
func (h *MetalRateHandler) Upsert(c *gin.Context) {
	var req struct {
		MaterialName string  `json:"material_name" binding:"required,max=100"`
		MaterialType string  `json:"material_type" binding:"required,max=50"`
		PricePerGram float64 `json:"price_per_gram" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rate, err := h.rateService.UpsertRate(c.Request.Context(), &service.UpsertRateInput{
		MaterialName: req.MaterialName,
		MaterialType: req.MaterialType,
		PricePerGram: req.PricePerGram,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Metal rate saved successfully", rate)
}

// List handles listing all rate entries
// @Summary List Metal Rates
// @Tags rates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /rates [get]
func (h *MetalRateHandler) List(c *gin.Context) {
	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Metal rates retrieved successfully", rates)
}

// Delete handles rate entry deletion
// @Summary Delete Metal Rate
// @Tags rates
// @Security BearerAuth
// @Param id path string true "Rate ID"
// @Success 200 {object} response.APIResponse
// @Router /rates/{id} [delete]
func (h *MetalRateHandler) Delete(c *gin.Context) {
	rateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid rate ID")
		return
	}

	if err := h.rateService.DeleteRate(c.Request.Context(), rateID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Metal rate deleted successfully", nil)
}
