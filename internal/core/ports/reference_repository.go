package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/senvo/shipping-api/internal/core/domain"
)

// ReferenceRepository provides read access to the seeded lookup tables.
// All lookups return domain.ErrReferenceNotFound (wrapped) on a miss.
type ReferenceRepository interface {
	CityByID(ctx context.Context, id uuid.UUID) (*domain.City, error)
	CarrierByID(ctx context.Context, id uuid.UUID) (*domain.Carrier, error)
	CarrierByName(ctx context.Context, name string) (*domain.Carrier, error)
	ListCarriers(ctx context.Context) ([]*domain.Carrier, error)
}
