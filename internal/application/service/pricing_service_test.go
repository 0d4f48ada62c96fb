package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/config"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
	domainRepo "github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/repository"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/pricing"
)

// fakeRateRepo serves a fixed rate list without a database.
type fakeRateRepo struct {
	rates []entity.MetalRate
}

func (f *fakeRateRepo) Create(ctx context.Context, rate *entity.MetalRate) error { return nil }
func (f *fakeRateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MetalRate, error) {
	return nil, nil
}
func (f *fakeRateRepo) GetByMaterial(ctx context.Context, materialName, materialType string) (*entity.MetalRate, error) {
	return nil, nil
}
func (f *fakeRateRepo) Update(ctx context.Context, rate *entity.MetalRate) error { return nil }
func (f *fakeRateRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (f *fakeRateRepo) List(ctx context.Context) ([]entity.MetalRate, error) {
	return f.rates, nil
}

// fakeProductRepo serves a fixed catalog without a database and records
// stock adjustments.
type fakeProductRepo struct {
	products   map[uuid.UUID]entity.Product
	decrements []map[uuid.UUID]int
	increments []map[uuid.UUID]int
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}
func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeProductRepo) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}
func (f *fakeProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	f.decrements = append(f.decrements, decrements)
	return nil, nil
}
func (f *fakeProductRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	f.increments = append(f.increments, increments)
	return nil
}

func newTestPricingService(rates []entity.MetalRate, products map[uuid.UUID]entity.Product) *PricingService {
	cfg := &config.PricingConfig{GSTPercent: 18, DefaultGoldRate: 6000, InvoicePrefix: "INV-"}
	return NewPricingService(&fakeRateRepo{rates: rates}, &fakeProductRepo{products: products}, cfg)
}

func TestQuoteCatalogLineWithWeightOverride(t *testing.T) {
	productID := uuid.New()
	products := map[uuid.UUID]entity.Product{
		productID: {
			ID:                productID,
			Name:              "Gold Chain",
			MaterialType:      "22K",
			GrossWeightGrams:  10,
			MakingRatePerGram: 500,
		},
	}
	rates := []entity.MetalRate{{MaterialName: "Gold", MaterialType: "22K", PricePerGram: 6000}}
	svc := newTestPricingService(rates, products)

	// Counter weighed the piece at 8g, overriding the 10g catalog weight.
	result, err := svc.Quote(context.Background(), &QuoteInput{
		Lines: []QuoteLineInput{{ProductID: &productID, Quantity: 1, TotalWeightGrams: 8}},
		Split: pricing.PaymentSplit{Cash: 61360},
	})
	require.NoError(t, err)

	// 8g * 6000 + 8g * 500 making = 52000; GST 18% = 9360.
	require.Len(t, result.Items, 1)
	assert.Equal(t, 8.0, result.Items[0].NetWeight)
	assert.Equal(t, 52000.0, result.Subtotal)
	assert.Equal(t, 9360.0, result.GST)
	assert.Equal(t, 61360.0, result.FinalTotal)
	assert.True(t, result.Confirmable())
}

func TestQuoteAdHocLineUsesInlineAttributes(t *testing.T) {
	rates := []entity.MetalRate{{MaterialName: "Silver", MaterialType: "925", PricePerGram: 90}}
	svc := newTestPricingService(rates, nil)

	result, err := svc.Quote(context.Background(), &QuoteInput{
		Lines: []QuoteLineInput{{
			Quantity:          2,
			TotalWeightGrams:  100,
			MaterialType:      "925",
			MakingRatePerGram: 10,
		}},
	})
	require.NoError(t, err)

	// (100g * 90 + 100g * 10) * 2 = 20000; nothing paid, all due.
	assert.Equal(t, 20000.0, result.Subtotal)
	assert.Equal(t, result.FinalTotal, result.Split.Due)
}

func TestQuoteUnknownProductFails(t *testing.T) {
	svc := newTestPricingService(nil, nil)
	missing := uuid.New()

	_, err := svc.Quote(context.Background(), &QuoteInput{
		Lines: []QuoteLineInput{{ProductID: &missing, Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestQuoteFallsBackToDefaultGoldRate(t *testing.T) {
	// Empty rate table: gold lines price at the configured default rate and
	// the quote carries a fallback warning.
	svc := newTestPricingService(nil, nil)

	result, err := svc.Quote(context.Background(), &QuoteInput{
		Lines:      []QuoteLineInput{{Quantity: 1, TotalWeightGrams: 1, MaterialType: "22K"}},
		GSTPercent: float64Ptr(0),
	})
	require.NoError(t, err)

	assert.Equal(t, 6000.0, result.Subtotal)
	require.Len(t, result.Items, 1)
	assert.True(t, result.Items[0].RateFallback)
	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, pricing.WarnRateFallback, result.Warnings[0].Code)
}

func TestQuoteGSTOverride(t *testing.T) {
	rates := []entity.MetalRate{{MaterialName: "Gold", MaterialType: "22K", PricePerGram: 1000}}
	svc := newTestPricingService(rates, nil)

	result, err := svc.Quote(context.Background(), &QuoteInput{
		Lines:      []QuoteLineInput{{Quantity: 1, TotalWeightGrams: 1, MaterialType: "22K"}},
		GSTPercent: float64Ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 30.0, result.GST)

	// Negative override is ignored in favor of the configured default.
	result, err = svc.Quote(context.Background(), &QuoteInput{
		Lines:      []QuoteLineInput{{Quantity: 1, TotalWeightGrams: 1, MaterialType: "22K"}},
		GSTPercent: float64Ptr(-5),
	})
	require.NoError(t, err)
	assert.Equal(t, 180.0, result.GST)
}

func float64Ptr(v float64) *float64 { return &v }
