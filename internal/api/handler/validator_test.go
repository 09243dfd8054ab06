package handler

import (
	"errors"
	"testing"

	"github.com/senvo/shipping-api/internal/core/domain"
)

// Field errors must be keyed by the wire name, matching the keys the service
// layer uses for the same endpoint.
func TestValidator_FieldKeysAreWireNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createShipmentRequest{
		DestinationCityID: "x",
		CarrierID:         "y",
		WeightUnit:        "STONE",
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"origin_city_id", "weight_unit"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Errorf("expected key %q in field errors, got %v", field, ve.Fields)
		}
	}
	for key := range ve.Fields {
		if key == "origincityid" || key == "weightunit" {
			t.Errorf("field key %q is not a wire name", key)
		}
	}
}

func TestValidator_ValidRequestPasses(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createShipmentRequest{
		OriginCityID:      "11111111-1111-1111-1111-111111111111",
		DestinationCityID: "22222222-2222-2222-2222-222222222222",
		CarrierID:         "33333333-3333-3333-3333-333333333333",
		Weight:            10,
		WeightUnit:        "KG",
	})
	if err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}
