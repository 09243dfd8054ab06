package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/senvo/shipping-api/internal/api/metrics"
	"github.com/senvo/shipping-api/internal/core/domain"
	"github.com/senvo/shipping-api/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for shipment operations.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Create handles POST /v1/shipments.
//
// @Summary      Create a new shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Idempotency key to make retries safe"
// @Param        body             body      createShipmentRequest  true   "Shipment details"
// @Success      201              {object}  shipmentResponse
// @Failure      400              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")

	result, err := h.service.CreateShipment(c.Request().Context(), toCreateInput(req, idempotencyKey))
	if err != nil {
		metrics.ShipmentsCreateErrorsTotal.WithLabelValues(createErrorReason(err)).Inc()
		return err
	}

	if result.AlreadyExisted {
		metrics.IdempotentReplaysTotal.Inc()
		return c.JSON(http.StatusOK, toShipmentResponse(result.Shipment))
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(result.Shipment.Carrier).Inc()
	return c.JSON(http.StatusCreated, toShipmentResponse(result.Shipment))
}

// List handles GET /v1/shipments.
//
// @Summary      List shipments
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        status        query     string  false  "Filter by status (created, in_transit, delivered, cancelled)"
// @Param        carrier       query     string  false  "Filter by carrier name"
// @Param        created_from  query     string  false  "Earliest creation time, inclusive (RFC 3339 or YYYY-MM-DD)"
// @Param        created_to    query     string  false  "Latest creation time, inclusive (RFC 3339 or YYYY-MM-DD)"
// @Param        min_price     query     number  false  "Minimum price, inclusive"
// @Param        max_price     query     number  false  "Maximum price, inclusive"
// @Param        page          query     int     false  "Page number, 1-based (default 1)"
// @Param        limit         query     int     false  "Page size (default 20, max 100)"
// @Success      200           {object}  listShipmentsResponse
// @Failure      422           {object}  map[string]string
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	input := ports.ListShipmentsInput{
		Status:      c.QueryParam("status"),
		Carrier:     c.QueryParam("carrier"),
		CreatedFrom: c.QueryParam("created_from"),
		CreatedTo:   c.QueryParam("created_to"),
	}

	var err error
	if input.Page, err = queryInt(c, "page"); err != nil {
		return err
	}
	if input.Limit, err = queryInt(c, "limit"); err != nil {
		return err
	}
	if input.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return err
	}
	if input.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return err
	}

	result, err := h.service.ListShipments(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.ShipmentsListedTotal.Inc()
	return c.JSON(http.StatusOK, toListResponse(result))
}

// queryInt parses an optional integer query parameter, reporting non-numeric
// values as a validation failure on that parameter.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// queryFloat parses an optional numeric query parameter; nil means absent.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a number")
	}
	return &f, nil
}

func createErrorReason(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return "validation"
	case errors.Is(err, domain.ErrReferenceNotFound):
		return "reference_not_found"
	case errors.Is(err, domain.ErrDuplicateKey), errors.Is(err, domain.ErrConstraintViolation):
		return "conflict"
	default:
		return "internal"
	}
}
