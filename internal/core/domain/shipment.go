package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus represents the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusCreated   ShipmentStatus = "created"
	StatusInTransit ShipmentStatus = "in_transit"
	StatusDelivered ShipmentStatus = "delivered"
	StatusCancelled ShipmentStatus = "cancelled"
)

// validTransitions defines the allowed forward transitions. There are no
// reverse edges: delivered and cancelled are terminal.
var validTransitions = map[ShipmentStatus][]ShipmentStatus{
	StatusCreated:   {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered, StatusCancelled},
}

var ErrInvalidTransition = errors.New("invalid status transition")

// IsValid reports whether s is one of the known shipment statuses.
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case StatusCreated, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// WeightUnit is the unit a weight is expressed in.
type WeightUnit string

const (
	WeightGram WeightUnit = "GRAM"
	WeightKg   WeightUnit = "KG"
	WeightLb   WeightUnit = "LB"
)

func (u WeightUnit) IsValid() bool {
	switch u {
	case WeightGram, WeightKg, WeightLb:
		return true
	}
	return false
}

// DimensionsUnit is the unit package dimensions are expressed in.
type DimensionsUnit string

const (
	DimensionsMm DimensionsUnit = "MM"
	DimensionsCm DimensionsUnit = "CM"
	DimensionsIn DimensionsUnit = "IN"
)

func (u DimensionsUnit) IsValid() bool {
	switch u {
	case DimensionsMm, DimensionsCm, DimensionsIn:
		return true
	}
	return false
}

// Shipment is the core aggregate root. It owns its scalar fields and holds
// non-owning references (by id) to the shared, read-only reference data.
type Shipment struct {
	ID                uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	TrackingNumber    string         `gorm:"column:tracking_number;size:40;uniqueIndex;not null"`
	OriginCityID      uuid.UUID      `gorm:"column:origin_city_id;type:uuid;index;not null"`
	DestinationCityID uuid.UUID      `gorm:"column:destination_city_id;type:uuid;index;not null"`
	CarrierID         uuid.UUID      `gorm:"column:carrier_id;type:uuid;index;not null"`
	Weight            float64        `gorm:"column:weight;type:numeric(15,2);not null"`
	WeightUnit        WeightUnit     `gorm:"column:weight_unit;size:8;not null"`
	Length            float64        `gorm:"column:length;type:numeric(10,2);not null"`
	Width             float64        `gorm:"column:width;type:numeric(10,2);not null"`
	Height            float64        `gorm:"column:height;type:numeric(10,2);not null"`
	DimensionsUnit    DimensionsUnit `gorm:"column:dimensions_unit;size:8;not null"`
	Price             float64        `gorm:"column:price;type:numeric(10,2);not null"`
	Currency          string         `gorm:"column:currency;size:3;not null"`
	Status            ShipmentStatus `gorm:"column:status;size:16;index;not null"`
	CreatedAt         time.Time      `gorm:"column:created_at;not null"`

	Origin      *City    `gorm:"foreignKey:OriginCityID;constraint:OnDelete:RESTRICT"`
	Destination *City    `gorm:"foreignKey:DestinationCityID;constraint:OnDelete:RESTRICT"`
	Carrier     *Carrier `gorm:"foreignKey:CarrierID;constraint:OnDelete:RESTRICT"`
}

func (Shipment) TableName() string { return "shipments" }
