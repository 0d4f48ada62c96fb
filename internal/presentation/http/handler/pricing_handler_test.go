package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/application/service"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/config"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
	domainRepo "github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/repository"
)

type stubRateRepo struct {
	rates []entity.MetalRate
}

func (s *stubRateRepo) Create(ctx context.Context, rate *entity.MetalRate) error { return nil }
func (s *stubRateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MetalRate, error) {
	return nil, nil
}
func (s *stubRateRepo) GetByMaterial(ctx context.Context, materialName, materialType string) (*entity.MetalRate, error) {
	return nil, nil
}
func (s *stubRateRepo) Update(ctx context.Context, rate *entity.MetalRate) error { return nil }
func (s *stubRateRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (s *stubRateRepo) List(ctx context.Context) ([]entity.MetalRate, error)     { return s.rates, nil }

type stubProductRepo struct{}

func (s *stubProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }
func (s *stubProductRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (s *stubProductRepo) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}
func (s *stubProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	return nil, nil
}
func (s *stubProductRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	return nil
}

func newQuoteRouter(rates []entity.MetalRate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.PricingConfig{GSTPercent: 18, DefaultGoldRate: 6000, InvoicePrefix: "INV-"}
	svc := service.NewPricingService(&stubRateRepo{rates: rates}, &stubProductRepo{}, cfg)
	h := NewPricingHandler(svc)

	r := gin.New()
	r.POST("/pricing/quote", h.Quote)
	return r
}

func TestQuoteEndpointReturnsBreakdown(t *testing.T) {
	router := newQuoteRouter([]entity.MetalRate{
		{MaterialName: "Gold", MaterialType: "22K", PricePerGram: 6000},
	})

	body := map[string]interface{}{
		"lines": []map[string]interface{}{
			{"quantity": 1, "total_weight_grams": 10, "material_type": "22K", "making_rate_per_gram": 500},
		},
		"split": map[string]interface{}{"cash": 76700},
	}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pricing/quote", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Subtotal   float64 `json:"subtotal"`
			GST        float64 `json:"gst"`
			FinalTotal float64 `json:"final_total"`
			SplitValid bool    `json:"split_valid"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	// 10g * 6000 + 10g * 500 = 65000; GST 18% = 11700.
	assert.Equal(t, 65000.0, resp.Data.Subtotal)
	assert.Equal(t, 11700.0, resp.Data.GST)
	assert.Equal(t, 76700.0, resp.Data.FinalTotal)
	assert.True(t, resp.Data.SplitValid)
}

func TestQuoteEndpointRejectsEmptyCart(t *testing.T) {
	router := newQuoteRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pricing/quote", bytes.NewReader([]byte(`{"lines":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
