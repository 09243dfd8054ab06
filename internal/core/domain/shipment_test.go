package domain

import "testing"

func TestShipmentStatus_IsValid(t *testing.T) {
	for _, s := range []ShipmentStatus{StatusCreated, StatusInTransit, StatusDelivered, StatusCancelled} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if ShipmentStatus("returned").IsValid() {
		t.Error("unknown status should not be valid")
	}
	if ShipmentStatus("").IsValid() {
		t.Error("empty status should not be valid")
	}
}

func TestShipmentStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to ShipmentStatus
		want     bool
	}{
		{StatusCreated, StatusInTransit, true},
		{StatusCreated, StatusCancelled, true},
		{StatusInTransit, StatusDelivered, true},
		{StatusInTransit, StatusCancelled, true},
		{StatusCreated, StatusDelivered, false}, // no skipping
		{StatusDelivered, StatusInTransit, false},
		{StatusDelivered, StatusCreated, false},
		{StatusCancelled, StatusInTransit, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestTrackingPatterns_RoundTrip(t *testing.T) {
	p := TrackingPatterns{"standard": `^1Z[A-Za-z0-9]{16}$`, "freight": `^\d{9}$`}

	v, err := p.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var got TrackingPatterns
	if err := got.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 2 || got["standard"] != p["standard"] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestTrackingPatterns_ScanNil(t *testing.T) {
	p := TrackingPatterns{"x": "y"}
	if err := p.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil map after scanning NULL, got %+v", p)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("weight", "must be greater than 0")
	want := "validation failed: weight: must be greater than 0"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
