package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
	domainRepo "github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/repository"
)

type metalRateRepository struct {
	db *gorm.DB
}

// NewMetalRateRepository creates a new metal rate repository
func NewMetalRateRepository(db *gorm.DB) domainRepo.MetalRateRepository {
	return &metalRateRepository{db: db}
}

func (r *metalRateRepository) Create(ctx context.Context, rate *entity.MetalRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *metalRateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MetalRate, error) {
	var rate entity.MetalRate
	err := r.db.WithContext(ctx).First(&rate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rate, err
}

func (r *metalRateRepository) GetByMaterial(ctx context.Context, materialName, materialType string) (*entity.MetalRate, error) {
	var rate entity.MetalRate
	err := r.db.WithContext(ctx).
		First(&rate, "material_name ILIKE ? AND material_type ILIKE ?", materialName, materialType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rate, err
}

func (r *metalRateRepository) Update(ctx context.Context, rate *entity.MetalRate) error {
	return r.db.WithContext(ctx).Save(rate).Error
}

func (r *metalRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MetalRate{}, "id = ?", id).Error
}

func (r *metalRateRepository) List(ctx context.Context) ([]entity.MetalRate, error) {
	var rates []entity.MetalRate
	err := r.db.WithContext(ctx).Order("material_name ASC, material_type ASC").Find(&rates).Error
	return rates, err
}
