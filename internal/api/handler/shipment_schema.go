package handler

import "time"

// --- Request / Response types ---

type createShipmentRequest struct {
	OriginCityID      string `json:"origin_city_id"      form:"origin_city_id"      validate:"required"`
	DestinationCityID string `json:"destination_city_id" form:"destination_city_id" validate:"required"`
	CarrierID         string `json:"carrier_id"          form:"carrier_id"          validate:"required"`

	// TrackingNumber is optional; when omitted the service generates one.
	TrackingNumber string `json:"tracking_number,omitempty" form:"tracking_number"`

	Weight     float64 `json:"weight"      form:"weight"      validate:"gte=0"`
	WeightUnit string  `json:"weight_unit" form:"weight_unit" validate:"omitempty,oneof=GRAM KG LB"`

	Length float64 `json:"length" form:"length" validate:"gte=0"`
	Width  float64 `json:"width"  form:"width"  validate:"gte=0"`
	Height float64 `json:"height" form:"height" validate:"gte=0"`

	DimensionsUnit string `json:"dimensions_unit" form:"dimensions_unit" validate:"omitempty,oneof=MM CM IN"`

	Price    float64 `json:"price"    form:"price"    validate:"gte=0"`
	Currency string  `json:"currency" form:"currency"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type locationResponse struct {
	CityID  string `json:"city_id"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type shipmentResponse struct {
	ID             string           `json:"id"`
	TrackingNumber string           `json:"tracking_number"`
	Status         string           `json:"status"`
	Origin         locationResponse `json:"origin"`
	Destination    locationResponse `json:"destination"`
	Carrier        string           `json:"carrier"`
	Weight         float64          `json:"weight"`
	WeightUnit     string           `json:"weight_unit"`
	Length         float64          `json:"length"`
	Width          float64          `json:"width"`
	Height         float64          `json:"height"`
	DimensionsUnit string           `json:"dimensions_unit"`
	Price          float64          `json:"price"`
	Currency       string           `json:"currency"`
	CreatedAt      time.Time        `json:"created_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listShipmentsResponse struct {
	Data       []shipmentResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type carrierResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	TrackingPatterns map[string]string `json:"tracking_patterns,omitempty"`
}

type listCarriersResponse struct {
	Data []carrierResponse `json:"data"`
}
