package handler

import (
	"github.com/senvo/shipping-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createShipmentRequest, idempotencyKey string) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		OriginCityID:      req.OriginCityID,
		DestinationCityID: req.DestinationCityID,
		CarrierID:         req.CarrierID,
		TrackingNumber:    req.TrackingNumber,
		Weight:            req.Weight,
		WeightUnit:        req.WeightUnit,
		Length:            req.Length,
		Width:             req.Width,
		Height:            req.Height,
		DimensionsUnit:    req.DimensionsUnit,
		Price:             req.Price,
		Currency:          req.Currency,
		IdempotencyKey:    idempotencyKey,
	}
}

// --- Service result → HTTP response ---

func toShipmentResponse(v ports.ShipmentView) shipmentResponse {
	return shipmentResponse{
		ID:             v.ID,
		TrackingNumber: v.TrackingNumber,
		Status:         v.Status,
		Origin:         toLocationResponse(v.Origin),
		Destination:    toLocationResponse(v.Destination),
		Carrier:        v.Carrier,
		Weight:         v.Weight,
		WeightUnit:     v.WeightUnit,
		Length:         v.Length,
		Width:          v.Width,
		Height:         v.Height,
		DimensionsUnit: v.DimensionsUnit,
		Price:          v.Price,
		Currency:       v.Currency,
		CreatedAt:      v.CreatedAt.UTC(),
	}
}

func toLocationResponse(l ports.LocationView) locationResponse {
	return locationResponse{
		CityID:  l.CityID,
		City:    l.City,
		State:   l.State,
		Country: l.Country,
	}
}

func toListResponse(r *ports.ListShipmentsResult) listShipmentsResponse {
	items := make([]shipmentResponse, len(r.Items))
	for i, v := range r.Items {
		items[i] = toShipmentResponse(v)
	}
	return listShipmentsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
