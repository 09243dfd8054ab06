package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/senvo/shipping-api/internal/core/ports"
)

// ReferenceHandler serves the seeded lookup data.
type ReferenceHandler struct {
	refs ports.ReferenceRepository
}

func NewReferenceHandler(refs ports.ReferenceRepository) *ReferenceHandler {
	return &ReferenceHandler{refs: refs}
}

// ListCarriers handles GET /v1/carriers.
//
// @Summary      List available carriers
// @Tags         reference
// @Produce      json
// @Success      200  {object}  listCarriersResponse
// @Router       /v1/carriers [get]
func (h *ReferenceHandler) ListCarriers(c echo.Context) error {
	carriers, err := h.refs.ListCarriers(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]carrierResponse, len(carriers))
	for i, carrier := range carriers {
		items[i] = carrierResponse{
			ID:               carrier.ID.String(),
			Name:             carrier.Name,
			TrackingPatterns: carrier.TrackingPatterns,
		}
	}
	return c.JSON(http.StatusOK, listCarriersResponse{Data: items})
}
