package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/config"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/repository"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/pricing"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/apperror"
)

// PricingService computes settlement quotes. It never persists anything:
// callers re-invoke Quote on every cart, discount, exchange or split change
// and render the returned breakdown.
type PricingService struct {
	rateRepo    repository.MetalRateRepository
	productRepo repository.ProductRepository
	cfg         *config.PricingConfig
}

// NewPricingService creates a new pricing service
func NewPricingService(
	rateRepo repository.MetalRateRepository,
	productRepo repository.ProductRepository,
	cfg *config.PricingConfig,
) *PricingService {
	return &PricingService{
		rateRepo:    rateRepo,
		productRepo: productRepo,
		cfg:         cfg,
	}
}

// QuoteLineInput is one cart line in a quote request. When ProductID is set
// the product's pricing attributes are snapshotted from the catalog and
// TotalWeightGrams (if positive) overrides the catalog weight. Without a
// ProductID the inline fields describe an ad-hoc line.
type QuoteLineInput struct {
	ProductID         *uuid.UUID
	Quantity          int
	TotalWeightGrams  float64
	LessWeightGrams   float64
	MaterialType      string
	MakingRatePerGram float64
	HasStones         bool
	StoneCaratWeight  float64
	StoneRatePerCarat float64
	StoneQuantity     int
	VACharges         float64
}

// QuoteInput represents a settlement quote request
type QuoteInput struct {
	Lines      []QuoteLineInput
	GSTPercent *float64
	Discount   *pricing.DiscountSpec
	Exchange   *pricing.ExchangeGold
	Split      pricing.PaymentSplit
}

// Quote runs the settlement pipeline against the current rate snapshot and
// returns the full breakdown without writing anything.
func (s *PricingService) Quote(ctx context.Context, input *QuoteInput) (*pricing.SettlementResult, error) {
	items, _, err := s.resolveLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	rates, err := s.RateSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := pricing.Settle(pricing.SettlementInput{
		Items:      items,
		Rates:      rates,
		GSTPercent: s.gstPercent(input.GSTPercent),
		Discount:   input.Discount,
		Exchange:   input.Exchange,
		Split:      input.Split,
	})
	return &result, nil
}

// CalculateGrossPrice computes a product price from gross weight and making
// percentage. Pure passthrough to the pricing engine.
func (s *PricingService) CalculateGrossPrice(input pricing.GrossPriceInput) pricing.GrossPriceResult {
	return pricing.CalculateGrossPrice(input)
}

// RateSnapshot loads the full metal rate table into an immutable snapshot
// for one pricing computation.
func (s *PricingService) RateSnapshot(ctx context.Context) (*pricing.RateTable, error) {
	rows, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	rates := make([]pricing.Rate, 0, len(rows))
	for _, row := range rows {
		rates = append(rates, pricing.Rate{
			MaterialName: row.MaterialName,
			MaterialType: row.MaterialType,
			PricePerGram: row.PricePerGram,
		})
	}
	return pricing.NewRateTable(rates, s.cfg.DefaultGoldRate), nil
}

// resolveLines turns quote lines into priced cart lines, snapshotting catalog
// products where referenced. Returns the resolved lines and the products
// fetched along the way keyed by ID.
func (s *PricingService) resolveLines(ctx context.Context, lines []QuoteLineInput) ([]pricing.LineItem, map[uuid.UUID]*entity.Product, error) {
	// Batch fetch referenced products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if line.ProductID != nil {
			productIDs = append(productIDs, *line.ProductID)
		}
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(productIDs))
	if len(productIDs) > 0 {
		products, err := s.productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return nil, nil, err
		}
		for i := range products {
			productMap[products[i].ID] = &products[i]
		}
	}

	items := make([]pricing.LineItem, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == nil {
			items = append(items, pricing.LineItem{
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
			continue
		}

		product, exists := productMap[*line.ProductID]
		if !exists {
			return nil, nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", line.ProductID))
		}

		item := product.ToLineItem(line.Quantity)
		// The counter weighs each piece; a positive weight on the line
		// overrides the catalog weight
		if line.TotalWeightGrams > 0 {
			item.TotalWeightGrams = line.TotalWeightGrams
		}
		items = append(items, item)
	}
	return items, productMap, nil
}

func (s *PricingService) gstPercent(override *float64) float64 {
	if override != nil && *override >= 0 {
		return *override
	}
	return s.cfg.GSTPercent
}
