package ports

import (
	"context"
	"time"
)

// CreateShipmentInput carries all data needed to create a new shipment.
// Identifier fields arrive as strings; the service parses and validates them.
type CreateShipmentInput struct {
	OriginCityID      string
	DestinationCityID string
	CarrierID         string
	// TrackingNumber is optional. When supplied it must match one of the
	// carrier's tracking patterns; when empty one is generated.
	TrackingNumber string
	Weight         float64
	WeightUnit     string
	Length         float64
	Width          float64
	Height         float64
	DimensionsUnit string
	Price          float64
	Currency       string
	// IdempotencyKey, when non-empty, makes the create safe to retry.
	IdempotencyKey string
}

// LocationView is the resolved, display-ready form of a city reference.
type LocationView struct {
	CityID  string
	City    string
	State   string
	Country string // ISO3 code
}

// ShipmentView is the full shipment representation returned to callers.
type ShipmentView struct {
	ID             string
	TrackingNumber string
	Status         string
	Origin         LocationView
	Destination    LocationView
	Carrier        string
	Weight         float64
	WeightUnit     string
	Length         float64
	Width          float64
	Height         float64
	DimensionsUnit string
	Price          float64
	Currency       string
	CreatedAt      time.Time
}

// CreateShipmentResult is returned by CreateShipment.
type CreateShipmentResult struct {
	Shipment ShipmentView
	// AlreadyExisted is true when the idempotency key matched an earlier
	// create and no new row was inserted.
	AlreadyExisted bool
}

// ListShipmentsInput carries all parameters for the list endpoint.
// CreatedFrom/CreatedTo arrive as strings (RFC 3339 timestamp or YYYY-MM-DD
// date); the service parses and validates them.
type ListShipmentsInput struct {
	Status      string
	Carrier     string // carrier name; unknown names yield an empty page
	CreatedFrom string
	CreatedTo   string
	MinPrice    *float64
	MaxPrice    *float64
	Page        int
	Limit       int
}

// ListShipmentsResult is returned by ListShipments.
type ListShipmentsResult struct {
	Items      []ShipmentView
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ShipmentService defines use-case operations for shipments.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*CreateShipmentResult, error)
	ListShipments(ctx context.Context, input ListShipmentsInput) (*ListShipmentsResult, error)
}
