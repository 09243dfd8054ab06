package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/senvo/shipping-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop())
	h(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec, body := renderError(t, &domain.ValidationError{
		Fields: map[string]string{"weight": "must be non-negative"},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	fields, ok := body["fields"].(map[string]any)
	if !ok || fields["weight"] != "must be non-negative" {
		t.Fatalf("expected field breakdown, got %v", body)
	}
}

func TestErrorHandler_ReferenceNotFound(t *testing.T) {
	rec, body := renderError(t, &domain.ReferenceError{Field: "carrier_id", Value: "nonexistent-id"})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["error"] == "" {
		t.Fatalf("expected error message, got %v", body)
	}
}

func TestErrorHandler_ConflictCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"duplicate key", domain.ErrDuplicateKey},
		{"constraint violation", domain.ErrConstraintViolation},
		{"user exists", domain.ErrUserExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := renderError(t, tc.err)
			if rec.Code != http.StatusConflict {
				t.Fatalf("expected 409, got %d", rec.Code)
			}
		})
	}
}

func TestErrorHandler_NotFoundCodes(t *testing.T) {
	for _, err := range []error{domain.ErrShipmentNotFound, domain.ErrUserNotFound} {
		rec, _ := renderError(t, err)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %v, got %d", err, rec.Code)
		}
	}
}

func TestErrorHandler_InvalidCredentials(t *testing.T) {
	rec, _ := renderError(t, domain.ErrInvalidCredentials)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "invalid payload" {
		t.Fatalf("unexpected message: %v", body)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec, body := renderError(t, errors.New("pq: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details must not leak: %v", body)
	}
}
