package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/senvo/shipping-api/internal/core/domain"
	"github.com/senvo/shipping-api/internal/core/ports"
)

// PostgreSQL error codes relevant to the shipment table constraints.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

type ShipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

// Insert persists a new shipment row inside a single transaction. The loaded
// reference associations are omitted from the write: the row carries only the
// foreign keys, and the database enforces that they exist.
func (r *ShipmentRepository) Insert(ctx context.Context, s *domain.Shipment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(s).Error
	})
	return translateError(err)
}

// FindByID retrieves a shipment with its carrier and fully resolved origin
// and destination cities.
func (r *ShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error) {
	var s domain.Shipment
	err := r.withRelations(r.db.WithContext(ctx)).First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns one page of shipments in insertion order plus the total count
// of rows matching the filter. No matches is an empty page, not an error.
func (r *ShipmentRepository) List(ctx context.Context, filter ports.ListShipmentsFilter) ([]*domain.Shipment, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Shipment{})
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.CarrierID != uuid.Nil {
		base = base.Where("carrier_id = ?", filter.CarrierID)
	}
	if !filter.CreatedFrom.IsZero() {
		base = base.Where("created_at >= ?", filter.CreatedFrom)
	}
	if !filter.CreatedTo.IsZero() {
		base = base.Where("created_at <= ?", filter.CreatedTo)
	}
	if filter.MinPrice != nil {
		base = base.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		base = base.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*domain.Shipment{}, 0, nil
	}

	shipments := []*domain.Shipment{}
	err := r.withRelations(base.Session(&gorm.Session{})).
		Order("created_at ASC, id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&shipments).Error
	if err != nil {
		return nil, 0, err
	}
	return shipments, total, nil
}

func (r *ShipmentRepository) withRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Origin.State").
		Preload("Origin.Country").
		Preload("Destination.State").
		Preload("Destination.Country").
		Preload("Carrier")
}

// translateError maps PostgreSQL constraint failures onto domain errors so
// upper layers never see driver types.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrDuplicateKey, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrConstraintViolation, pgErr.ConstraintName)
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateKey
	}
	return err
}
