package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/senvo/shipping-api/internal/core/domain"
	"github.com/senvo/shipping-api/internal/core/ports"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// IdempotencyStore abstracts the replay-protection store (Redis). It maps an
// idempotency key to the id of the shipment created under that key.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, shipmentID string) error
}

type ShipmentService struct {
	repo   ports.ShipmentRepository
	refs   ports.ReferenceRepository
	idem   IdempotencyStore // optional, may be nil
	logger zerolog.Logger
}

func NewShipmentService(repo ports.ShipmentRepository, refs ports.ReferenceRepository, idem IdempotencyStore, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, refs: refs, idem: idem, logger: logger}
}

// CreateShipment validates the input against reference data, generates the
// shipment identifier, and persists the row in a single transaction. If an
// idempotency key was already seen, the shipment created under it is returned
// without side effects.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*ports.CreateShipmentResult, error) {
	if input.IdempotencyKey != "" && s.idem != nil {
		if replay, ok := s.replayShipment(ctx, input.IdempotencyKey); ok {
			return &ports.CreateShipmentResult{Shipment: toShipmentView(replay), AlreadyExisted: true}, nil
		}
	}

	if err := validateCreate(input); err != nil {
		return nil, err
	}

	originID, destinationID, carrierID, err := parseReferenceIDs(input)
	if err != nil {
		return nil, err
	}

	origin, err := s.resolveCity(ctx, "origin_city_id", originID)
	if err != nil {
		return nil, err
	}
	destination, err := s.resolveCity(ctx, "destination_city_id", destinationID)
	if err != nil {
		return nil, err
	}
	carrier, err := s.refs.CarrierByID(ctx, carrierID)
	if err != nil {
		if errors.Is(err, domain.ErrReferenceNotFound) {
			return nil, &domain.ReferenceError{Field: "carrier_id", Value: input.CarrierID}
		}
		return nil, err
	}

	trackingNumber := input.TrackingNumber
	if trackingNumber == "" {
		trackingNumber = generateTrackingNumber()
	} else if !matchesCarrierPattern(carrier, trackingNumber) {
		return nil, domain.NewValidationError("tracking_number",
			fmt.Sprintf("does not match any pattern for carrier %q", carrier.Name))
	}

	shipment := &domain.Shipment{
		ID:                uuid.New(),
		TrackingNumber:    trackingNumber,
		OriginCityID:      origin.ID,
		DestinationCityID: destination.ID,
		CarrierID:         carrier.ID,
		Weight:            input.Weight,
		WeightUnit:        weightUnitOrDefault(input.WeightUnit),
		Length:            input.Length,
		Width:             input.Width,
		Height:            input.Height,
		DimensionsUnit:    dimensionsUnitOrDefault(input.DimensionsUnit),
		Price:             input.Price,
		Currency:          input.Currency,
		Status:            domain.StatusCreated,
		CreatedAt:         time.Now().UTC(),
		Origin:            origin,
		Destination:       destination,
		Carrier:           carrier,
	}

	if err := s.repo.Insert(ctx, shipment); err != nil {
		s.logger.Error().Err(err).Str("tracking_number", trackingNumber).Msg("failed to insert shipment")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Set(ctx, input.IdempotencyKey, shipment.ID.String()); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to record idempotency key")
		}
	}

	s.logger.Info().
		Str("shipment_id", shipment.ID.String()).
		Str("tracking_number", shipment.TrackingNumber).
		Str("carrier", carrier.Name).
		Msg("shipment created")

	return &ports.CreateShipmentResult{Shipment: toShipmentView(shipment)}, nil
}

// ListShipments validates pagination and filters, then delegates to the
// repository. Unknown carrier names yield an empty page rather than an error.
func (s *ShipmentService) ListShipments(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	if input.Page < 0 {
		return nil, domain.NewValidationError("page", "must not be negative")
	}
	if input.Limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}

	page := input.Page
	if page == 0 {
		page = 1
	}
	limit := input.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := ports.ListShipmentsFilter{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	if input.Status != "" {
		if !domain.ShipmentStatus(input.Status).IsValid() {
			return nil, domain.NewValidationError("status", "must be one of: created, in_transit, delivered, cancelled")
		}
		filter.Status = input.Status
	}

	if input.Carrier != "" {
		carrier, err := s.refs.CarrierByName(ctx, input.Carrier)
		if err != nil {
			if errors.Is(err, domain.ErrReferenceNotFound) {
				return &ports.ListShipmentsResult{Items: []ports.ShipmentView{}, Page: page, Limit: limit}, nil
			}
			return nil, err
		}
		filter.CarrierID = carrier.ID
	}

	if input.CreatedFrom != "" {
		from, err := parseTimeParam("created_from", input.CreatedFrom)
		if err != nil {
			return nil, err
		}
		filter.CreatedFrom = from
	}
	if input.CreatedTo != "" {
		to, err := parseTimeParam("created_to", input.CreatedTo)
		if err != nil {
			return nil, err
		}
		filter.CreatedTo = to
	}
	if !filter.CreatedFrom.IsZero() && !filter.CreatedTo.IsZero() && filter.CreatedFrom.After(filter.CreatedTo) {
		return nil, domain.NewValidationError("created_from", "must not be after created_to")
	}

	if input.MinPrice != nil && *input.MinPrice < 0 {
		return nil, domain.NewValidationError("min_price", "must not be negative")
	}
	if input.MaxPrice != nil && *input.MaxPrice < 0 {
		return nil, domain.NewValidationError("max_price", "must not be negative")
	}
	if input.MinPrice != nil && input.MaxPrice != nil && *input.MinPrice > *input.MaxPrice {
		return nil, domain.NewValidationError("min_price", "must not exceed max_price")
	}
	filter.MinPrice = input.MinPrice
	filter.MaxPrice = input.MaxPrice

	shipments, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list shipments")
		return nil, err
	}

	items := make([]ports.ShipmentView, 0, len(shipments))
	for _, sh := range shipments {
		items = append(items, toShipmentView(sh))
	}

	return &ports.ListShipmentsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// replayShipment looks up an idempotency key and loads the shipment it maps
// to. Store errors are logged and treated as a miss.
func (s *ShipmentService) replayShipment(ctx context.Context, key string) (*domain.Shipment, bool) {
	stored, err := s.idem.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
		return nil, false
	}
	if stored == "" {
		return nil, false
	}

	id, err := uuid.Parse(stored)
	if err != nil {
		s.logger.Warn().Str("idempotency_key", key).Str("value", stored).Msg("malformed idempotency record, ignoring")
		return nil, false
	}

	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotent shipment lookup failed, creating anyway")
		return nil, false
	}

	s.logger.Info().Str("idempotency_key", key).Str("shipment_id", stored).Msg("idempotent replay")
	return shipment, true
}

func (s *ShipmentService) resolveCity(ctx context.Context, field string, id uuid.UUID) (*domain.City, error) {
	city, err := s.refs.CityByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrReferenceNotFound) {
			return nil, &domain.ReferenceError{Field: field, Value: id.String()}
		}
		return nil, err
	}
	return city, nil
}

// validateCreate checks all scalar fields and accumulates per-field messages.
func validateCreate(input ports.CreateShipmentInput) error {
	fields := map[string]string{}

	if input.Weight < 0 {
		fields["weight"] = "must not be negative"
	}
	if input.Length < 0 {
		fields["length"] = "must not be negative"
	}
	if input.Width < 0 {
		fields["width"] = "must not be negative"
	}
	if input.Height < 0 {
		fields["height"] = "must not be negative"
	}
	if input.Price < 0 {
		fields["price"] = "must not be negative"
	}
	if input.WeightUnit != "" && !domain.WeightUnit(input.WeightUnit).IsValid() {
		fields["weight_unit"] = "must be one of: GRAM, KG, LB"
	}
	if input.DimensionsUnit != "" && !domain.DimensionsUnit(input.DimensionsUnit).IsValid() {
		fields["dimensions_unit"] = "must be one of: MM, CM, IN"
	}
	if input.Price > 0 && input.Currency == "" {
		fields["currency"] = "is required when price is set"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// parseReferenceIDs parses the three reference identifiers. A malformed id
// can never name an existing row, so it surfaces as ReferenceError just like
// a well-formed id that is absent from the reference tables.
func parseReferenceIDs(input ports.CreateShipmentInput) (origin, destination, carrier uuid.UUID, err error) {
	origin, err = uuid.Parse(input.OriginCityID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, &domain.ReferenceError{Field: "origin_city_id", Value: input.OriginCityID}
	}
	destination, err = uuid.Parse(input.DestinationCityID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, &domain.ReferenceError{Field: "destination_city_id", Value: input.DestinationCityID}
	}
	carrier, err = uuid.Parse(input.CarrierID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, &domain.ReferenceError{Field: "carrier_id", Value: input.CarrierID}
	}
	return origin, destination, carrier, nil
}

// parseTimeParam accepts an RFC 3339 timestamp or a bare date.
func parseTimeParam(field, raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.NewValidationError(field, "must be an RFC 3339 timestamp or YYYY-MM-DD date")
}

// matchesCarrierPattern reports whether the tracking number matches at least
// one of the carrier's patterns. A carrier with no patterns accepts anything.
func matchesCarrierPattern(carrier *domain.Carrier, trackingNumber string) bool {
	if len(carrier.TrackingPatterns) == 0 {
		return true
	}
	for _, pattern := range carrier.TrackingPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		if re.MatchString(trackingNumber) {
			return true
		}
	}
	return false
}

// generateTrackingNumber returns a tracking number in the format SNV-XXXXXXXX.
func generateTrackingNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("SNV-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("SNV-%08X", b)
}

func weightUnitOrDefault(u string) domain.WeightUnit {
	if u == "" {
		return domain.WeightKg
	}
	return domain.WeightUnit(u)
}

func dimensionsUnitOrDefault(u string) domain.DimensionsUnit {
	if u == "" {
		return domain.DimensionsCm
	}
	return domain.DimensionsUnit(u)
}

func toShipmentView(s *domain.Shipment) ports.ShipmentView {
	view := ports.ShipmentView{
		ID:             s.ID.String(),
		TrackingNumber: s.TrackingNumber,
		Status:         string(s.Status),
		Origin:         toLocationView(s.OriginCityID, s.Origin),
		Destination:    toLocationView(s.DestinationCityID, s.Destination),
		Weight:         s.Weight,
		WeightUnit:     string(s.WeightUnit),
		Length:         s.Length,
		Width:          s.Width,
		Height:         s.Height,
		DimensionsUnit: string(s.DimensionsUnit),
		Price:          s.Price,
		Currency:       s.Currency,
		CreatedAt:      s.CreatedAt,
	}
	if s.Carrier != nil {
		view.Carrier = s.Carrier.Name
	}
	return view
}

func toLocationView(id uuid.UUID, city *domain.City) ports.LocationView {
	view := ports.LocationView{CityID: id.String()}
	if city == nil {
		return view
	}
	view.City = city.Name
	if city.State != nil {
		view.State = city.State.Name
	}
	if city.Country != nil {
		view.Country = city.Country.ISO3
	}
	return view
}
