package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
)

// MetalRateRepository defines the interface for metal rate data operations.
// Pricing never reads rates row by row: it takes List as a whole and builds
// an immutable snapshot for the duration of one computation.
type MetalRateRepository interface {
	Create(ctx context.Context, rate *entity.MetalRate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MetalRate, error)
	GetByMaterial(ctx context.Context, materialName, materialType string) (*entity.MetalRate, error)
	Update(ctx context.Context, rate *entity.MetalRate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.MetalRate, error)
}
