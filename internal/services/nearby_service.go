package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"monumentscout/internal/models/request_models"
	"monumentscout/internal/models/response_models"
	"monumentscout/pkg/middleware"
	"monumentscout/pkg/overpass"
	"monumentscout/pkg/utils"
)

const (
	DefaultRadiusMeters = 5000
	MaxRadiusMeters     = 50000

	fallbackPlaceType = "attraction"
	fallbackPlaceName = "Unknown Place"
)

type NearbyServiceInterface interface {
	SearchNearby(ctx context.Context, req request_models.NearbyRequest) ([]response_models.Place, error)
}

// OverpassInterpreter is the part of overpass.Client the service needs.
type OverpassInterpreter interface {
	Interpret(ctx context.Context, query string) (*overpass.Result, error)
}

type NearbyService struct {
	overpass     OverpassInterpreter
	queryTimeout int
	logger       *zap.Logger
}

func NewNearbyService(client OverpassInterpreter, queryTimeout int, logger *zap.Logger) NearbyServiceInterface {
	return &NearbyService{
		overpass:     client,
		queryTimeout: queryTimeout,
		logger:       logger,
	}
}

func (s *NearbyService) SearchNearby(ctx context.Context, req request_models.NearbyRequest) ([]response_models.Place, error) {
	if req.Lat == "" || req.Lon == "" {
		return nil, utils.ErrMissingCoordinates
	}

	lat, err := parseCoordinate(req.Lat, 90)
	if err != nil {
		return nil, fmt.Errorf("%w: lat %q", utils.ErrInvalidCoordinates, req.Lat)
	}
	lon, err := parseCoordinate(req.Lon, 180)
	if err != nil {
		return nil, fmt.Errorf("%w: lon %q", utils.ErrInvalidCoordinates, req.Lon)
	}

	radius := ResolveRadius(req.Radius)
	query := overpass.BuildAroundQuery(overpass.AttractionSelectors, lat, lon, radius, s.queryTimeout)

	log := s.logger.With(zap.String("trace_id", middleware.TraceIDFromContext(ctx)))

	result, err := s.overpass.Interpret(ctx, query)
	if err != nil {
		log.Error("overpass request failed",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Int("radius", radius),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrLocationFetchFailed, err)
	}

	log.Info("overpass returned results", zap.Int("total", result.Total), zap.Int("radius", radius))

	places := NormalizePlaces(result.Elements)

	log.Info("tourist attractions found", zap.Int("count", len(places)))

	return places, nil
}

// ResolveRadius follows parseInt semantics: the leading integer of raw is
// used, with absent, unparseable or zero values falling back to the default.
// The result is clamped to [0, MaxRadiusMeters].
func ResolveRadius(raw string) int {
	n, ok := parseIntPrefix(raw)
	if !ok || n == 0 {
		return DefaultRadiusMeters
	}
	if n > MaxRadiusMeters {
		return MaxRadiusMeters
	}
	if n < 0 {
		return 0
	}
	return int(n)
}

func parseIntPrefix(raw string) (int64, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// on ErrRange n is already saturated at the int64 bound
	return n, true
}

func parseCoordinate(raw string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < -limit || v > limit {
		return 0, fmt.Errorf("coordinate %v out of range", v)
	}
	return v, nil
}

// NormalizePlaces maps Overpass elements to places, keeping upstream order
// and dropping elements without resolvable coordinates. The result is never nil.
func NormalizePlaces(elements []overpass.Element) []response_models.Place {
	places := make([]response_models.Place, 0, len(elements))
	for _, el := range elements {
		if place, ok := NormalizePlace(el); ok {
			places = append(places, place)
		}
	}
	return places
}

func NormalizePlace(el overpass.Element) (response_models.Place, bool) {
	lat, lon, ok := el.Coordinates()
	if !ok {
		return response_models.Place{}, false
	}

	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	name := firstNonEmpty(el.Tag("name"), el.Tag("name:en"), fallbackPlaceName)

	return response_models.Place{
		Lat:         lat,
		Lon:         lon,
		DisplayName: name,
		Name:        name,
		Type:        firstNonEmpty(el.Tag("tourism"), el.Tag("historic"), el.Tag("amenity"), el.Tag("man_made"), fallbackPlaceType),
		Class:       placeClass(el),
		Tags:        tags,
	}, true
}

// placeClass collapses the category to tourism, historic or amenity;
// man_made features are reported as amenity.
func placeClass(el overpass.Element) string {
	switch {
	case el.Tag("tourism") != "":
		return "tourism"
	case el.Tag("historic") != "":
		return "historic"
	default:
		return "amenity"
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
