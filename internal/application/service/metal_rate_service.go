package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/repository"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/apperror"
)

// MetalRateService handles rate-management operations
type MetalRateService struct {
	rateRepo repository.MetalRateRepository
}

// NewMetalRateService creates a new metal rate service
func NewMetalRateService(rateRepo repository.MetalRateRepository) *MetalRateService {
	return &MetalRateService{rateRepo: rateRepo}
}

// UpsertRateInput represents a rate create-or-update request
type UpsertRateInput struct {
	MaterialName string
	MaterialType string
	PricePerGram float64
}

// UpsertRate creates a rate entry or updates the price of an existing one.
// Rates are keyed by (material name, material type).
func (s *MetalRateService) UpsertRate(ctx context.Context, input *UpsertRateInput) (*entity.MetalRate, error) {
	if input.PricePerGram < 0 {
		return nil, apperror.NewBadRequestError("Price per gram must not be negative")
	}

	existing, err := s.rateRepo.GetByMaterial(ctx, input.MaterialName, input.MaterialType)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.PricePerGram = input.PricePerGram
		if err := s.rateRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	rate := &entity.MetalRate{
		MaterialName: input.MaterialName,
		MaterialType: input.MaterialType,
		PricePerGram: input.PricePerGram,
	}
	if err := s.rateRepo.Create(ctx, rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// GetRate retrieves a rate by ID
func (s *MetalRateService) GetRate(ctx context.Context, id uuid.UUID) (*entity.MetalRate, error) {
	rate, err := s.rateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, apperror.NewNotFoundError("Metal rate")
	}
	return rate, nil
}

// ListRates lists all rate entries
func (s *MetalRateService) ListRates(ctx context.Context) ([]entity.MetalRate, error) {
	return s.rateRepo.List(ctx)
}

// DeleteRate deletes a rate entry
func (s *MetalRateService) DeleteRate(ctx context.Context, id uuid.UUID) error {
	rate, err := s.rateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rate == nil {
		return apperror.NewNotFoundError("Metal rate")
	}
	return s.rateRepo.Delete(ctx, id)
}
