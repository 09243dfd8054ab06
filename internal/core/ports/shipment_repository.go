package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/senvo/shipping-api/internal/core/domain"
)

// ListShipmentsFilter carries all query parameters for listing shipments.
// Offset/Limit are computed by the service layer from page/limit input.
type ListShipmentsFilter struct {
	Status      string    // optional: filter by shipment status
	CarrierID   uuid.UUID // optional: zero value = no carrier filter
	CreatedFrom time.Time // optional: zero value = unbounded; inclusive
	CreatedTo   time.Time // optional: zero value = unbounded; inclusive
	MinPrice    *float64  // optional: nil = unbounded; inclusive
	MaxPrice    *float64  // optional: nil = unbounded; inclusive
	Offset      int
	Limit       int
}

// ShipmentRepository defines persistence operations for shipments.
type ShipmentRepository interface {
	// Insert persists a new shipment row in a single transaction.
	// A dangling foreign key surfaces as domain.ErrConstraintViolation and
	// an identifier collision as domain.ErrDuplicateKey.
	Insert(ctx context.Context, s *domain.Shipment) error
	// FindByID retrieves a shipment with its carrier and city relations.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error)
	// List returns a page of shipments matching filter, in insertion order,
	// along with the total count. An empty page is not an error.
	List(ctx context.Context, filter ListShipmentsFilter) ([]*domain.Shipment, int64, error)
}
