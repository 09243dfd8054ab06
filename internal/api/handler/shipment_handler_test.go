package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/senvo/shipping-api/internal/core/domain"
	"github.com/senvo/shipping-api/internal/core/ports"
)

type stubShipmentService struct {
	createFn func(ctx context.Context, input ports.CreateShipmentInput) (*ports.CreateShipmentResult, error)
	listFn   func(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error)
}

func (s *stubShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*ports.CreateShipmentResult, error) {
	return s.createFn(ctx, input)
}

func (s *stubShipmentService) ListShipments(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	return s.listFn(ctx, input)
}

func sampleView() ports.ShipmentView {
	return ports.ShipmentView{
		ID:             "9f1c7e52-0000-0000-0000-000000000001",
		TrackingNumber: "SNV-0A1B2C3D",
		Status:         "created",
		Origin: ports.LocationView{
			CityID:  "9f1c7e52-0000-0000-0000-0000000000aa",
			City:    "Berlin",
			State:   "Berlin",
			Country: "DEU",
		},
		Destination: ports.LocationView{
			CityID:  "9f1c7e52-0000-0000-0000-0000000000bb",
			City:    "Hamburg",
			State:   "Hamburg",
			Country: "DEU",
		},
		Carrier:        "ups",
		Weight:         10,
		WeightUnit:     "KG",
		DimensionsUnit: "CM",
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

const createBody = `{
	"origin_city_id":      "9f1c7e52-0000-0000-0000-0000000000aa",
	"destination_city_id": "9f1c7e52-0000-0000-0000-0000000000bb",
	"carrier_id":          "9f1c7e52-0000-0000-0000-0000000000cc",
	"weight": 10
}`

func TestShipmentHandler_Create_Success(t *testing.T) {
	var gotInput ports.CreateShipmentInput
	stub := &stubShipmentService{
		createFn: func(ctx context.Context, input ports.CreateShipmentInput) (*ports.CreateShipmentResult, error) {
			gotInput = input
			return &ports.CreateShipmentResult{Shipment: sampleView()}, nil
		},
	}
	h := NewShipmentHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/shipments", strings.NewReader(createBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Idempotency-Key", "retry-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotInput.IdempotencyKey != "retry-42" {
		t.Fatalf("idempotency key not forwarded: %q", gotInput.IdempotencyKey)
	}
	if gotInput.Weight != 10 {
		t.Fatalf("weight not forwarded: %v", gotInput.Weight)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["tracking_number"] != "SNV-0A1B2C3D" {
		t.Fatalf("unexpected tracking number: %v", resp["tracking_number"])
	}
	origin, ok := resp["origin"].(map[string]any)
	if !ok || origin["city"] != "Berlin" || origin["country"] != "DEU" {
		t.Fatalf("unexpected origin payload: %+v", resp["origin"])
	}
}

func TestShipmentHandler_Create_IdempotentReplay(t *testing.T) {
	stub := &stubShipmentService{
		createFn: func(ctx context.Context, input ports.CreateShipmentInput) (*ports.CreateShipmentResult, error) {
			return &ports.CreateShipmentResult{Shipment: sampleView(), AlreadyExisted: true}, nil
		},
	}
	h := NewShipmentHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/shipments", strings.NewReader(createBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Idempotency-Key", "retry-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("replay should return 200, got %d", rec.Code)
	}
}

func TestShipmentHandler_Create_MissingReferences(t *testing.T) {
	stub := &stubShipmentService{
		createFn: func(ctx context.Context, input ports.CreateShipmentInput) (*ports.CreateShipmentResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewShipmentHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/shipments", strings.NewReader(`{"weight": 5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"origin_city_id", "destination_city_id", "carrier_id"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Fatalf("expected %s in field errors, got %v", field, ve.Fields)
		}
	}
}

func TestShipmentHandler_Create_UnknownCarrierPassesThrough(t *testing.T) {
	refErr := &domain.ReferenceError{Field: "carrier_id", Value: "nonexistent-id"}
	stub := &stubShipmentService{
		createFn: func(ctx context.Context, input ports.CreateShipmentInput) (*ports.CreateShipmentResult, error) {
			return nil, refErr
		},
	}
	h := NewShipmentHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/shipments", strings.NewReader(createBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	if !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected reference-not-found error, got %v", err)
	}
}

func TestShipmentHandler_List_ForwardsFilters(t *testing.T) {
	var gotInput ports.ListShipmentsInput
	stub := &stubShipmentService{
		listFn: func(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
			gotInput = input
			return &ports.ListShipmentsResult{
				Items:      []ports.ShipmentView{sampleView()},
				Total:      1,
				Page:       2,
				Limit:      5,
				TotalPages: 1,
			}, nil
		},
	}
	h := NewShipmentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/v1/shipments?status=created&carrier=ups&page=2&limit=5&created_from=2025-06-01&min_price=20&max_price=100", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotInput.Status != "created" || gotInput.Carrier != "ups" || gotInput.Page != 2 || gotInput.Limit != 5 {
		t.Fatalf("filters not forwarded: %+v", gotInput)
	}
	if gotInput.CreatedFrom != "2025-06-01" {
		t.Fatalf("created_from not forwarded: %q", gotInput.CreatedFrom)
	}
	if gotInput.MinPrice == nil || *gotInput.MinPrice != 20 || gotInput.MaxPrice == nil || *gotInput.MaxPrice != 100 {
		t.Fatalf("price bounds not forwarded: %+v", gotInput)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one item, got %v", resp["data"])
	}
	pagination, ok := resp["pagination"].(map[string]any)
	if !ok || pagination["page"] != float64(2) || pagination["total"] != float64(1) {
		t.Fatalf("unexpected pagination: %+v", resp["pagination"])
	}
}

func TestShipmentHandler_List_NonNumericPage(t *testing.T) {
	stub := &stubShipmentService{
		listFn: func(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewShipmentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/shipments?page=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := ve.Fields["page"]; !ok {
		t.Fatalf("expected page field error, got %v", ve.Fields)
	}
}

func TestShipmentHandler_List_NonNumericPrice(t *testing.T) {
	stub := &stubShipmentService{
		listFn: func(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewShipmentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/shipments?min_price=cheap", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := ve.Fields["min_price"]; !ok {
		t.Fatalf("expected min_price field error, got %v", ve.Fields)
	}
}

func TestShipmentHandler_List_EmptyResult(t *testing.T) {
	stub := &stubShipmentService{
		listFn: func(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
			return &ports.ListShipmentsResult{Items: nil, Total: 0, Page: 1, Limit: 20, TotalPages: 0}, nil
		},
	}
	h := NewShipmentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/shipments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("empty list should render as empty array: %s", rec.Body.String())
	}
}
