package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/repository"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/apperror"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/pagination"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/utils"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID            uuid.UUID
	CategoryID        *uuid.UUID
	Name              string
	Code              string
	MaterialName      string
	MaterialType      string
	GrossWeightGrams  float64
	LessWeightGrams   float64
	MakingRatePerGram float64
	HasStones         bool
	StoneCaratWeight  float64
	StoneRatePerCarat float64
	StoneQuantity     int
	VACharges         float64
	Quantity          int
	QuantityAlert     int
	Notes             *string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	// Auto-generate code if not provided
	code := input.Code
	if code == "" {
		code = utils.GenerateProductCode()
	}

	// Check if code already exists
	existingProduct, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existingProduct != nil {
		return nil, apperror.NewConflictError("Product code already exists")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product := &entity.Product{
		UserID:            input.UserID,
		CategoryID:        input.CategoryID,
		Name:              input.Name,
		Slug:              utils.Slugify(input.Name),
		Code:              code,
		MaterialName:      input.MaterialName,
		MaterialType:      input.MaterialType,
		GrossWeightGrams:  input.GrossWeightGrams,
		LessWeightGrams:   input.LessWeightGrams,
		MakingRatePerGram: input.MakingRatePerGram,
		HasStones:         input.HasStones,
		StoneCaratWeight:  input.StoneCaratWeight,
		StoneRatePerCarat: input.StoneRatePerCarat,
		StoneQuantity:     input.StoneQuantity,
		VACharges:         input.VACharges,
		Quantity:          input.Quantity,
		QuantityAlert:     input.QuantityAlert,
		Notes:             input.Notes,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by slug
func (s *ProductService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByID retrieves a product by ID
func (s *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ProductID         uuid.UUID
	CategoryID        *uuid.UUID
	Name              *string
	MaterialName      *string
	MaterialType      *string
	GrossWeightGrams  *float64
	LessWeightGrams   *float64
	MakingRatePerGram *float64
	HasStones         *bool
	StoneCaratWeight  *float64
	StoneRatePerCarat *float64
	StoneQuantity     *int
	VACharges         *float64
	Quantity          *int
	QuantityAlert     *int
	Notes             *string
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}

	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = utils.Slugify(*input.Name)
	}
	if input.MaterialName != nil {
		product.MaterialName = *input.MaterialName
	}
	if input.MaterialType != nil {
		product.MaterialType = *input.MaterialType
	}
	if input.GrossWeightGrams != nil {
		product.GrossWeightGrams = *input.GrossWeightGrams
	}
	if input.LessWeightGrams != nil {
		product.LessWeightGrams = *input.LessWeightGrams
	}
	if input.MakingRatePerGram != nil {
		product.MakingRatePerGram = *input.MakingRatePerGram
	}
	if input.HasStones != nil {
		product.HasStones = *input.HasStones
	}
	if input.StoneCaratWeight != nil {
		product.StoneCaratWeight = *input.StoneCaratWeight
	}
	if input.StoneRatePerCarat != nil {
		product.StoneRatePerCarat = *input.StoneRatePerCarat
	}
	if input.StoneQuantity != nil {
		product.StoneQuantity = *input.StoneQuantity
	}
	if input.VACharges != nil {
		product.VACharges = *input.VACharges
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.QuantityAlert != nil {
		product.QuantityAlert = *input.QuantityAlert
	}
	if input.Notes != nil {
		product.Notes = input.Notes
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// GetLowStockProducts returns products at or below their quantity alert
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
