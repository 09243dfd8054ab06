package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senvo/shipping-api/internal/core/domain"
)

// ReferenceRepository reads the seeded lookup tables. All request-time access
// is read-only; writes happen only through the seed commands.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) CityByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	var city domain.City
	err := r.db.WithContext(ctx).
		Preload("State").
		Preload("Country").
		First(&city, "id = ?", id).Error
	if err != nil {
		return nil, referenceErr(err)
	}
	return &city, nil
}

func (r *ReferenceRepository) CarrierByID(ctx context.Context, id uuid.UUID) (*domain.Carrier, error) {
	var carrier domain.Carrier
	if err := r.db.WithContext(ctx).First(&carrier, "id = ?", id).Error; err != nil {
		return nil, referenceErr(err)
	}
	return &carrier, nil
}

func (r *ReferenceRepository) CarrierByName(ctx context.Context, name string) (*domain.Carrier, error) {
	var carrier domain.Carrier
	if err := r.db.WithContext(ctx).First(&carrier, "name = ?", name).Error; err != nil {
		return nil, referenceErr(err)
	}
	return &carrier, nil
}

func (r *ReferenceRepository) ListCarriers(ctx context.Context) ([]*domain.Carrier, error) {
	carriers := []*domain.Carrier{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&carriers).Error; err != nil {
		return nil, err
	}
	return carriers, nil
}

func referenceErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrReferenceNotFound
	}
	return err
}
