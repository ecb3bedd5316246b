package location

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bihius/weather-app/internal/observability"
	"github.com/bihius/weather-app/internal/providers/openstreetmap"
	"github.com/bihius/weather-app/internal/types"
)

const (
	// MinQueryLength is the shortest trimmed query, in characters, that is
	// sent to the geocoder.
	MinQueryLength = 2
	DefaultLimit   = 10

	// duplicateTolerance collapses records closer than this on both axes,
	// typically a city and the administrative boundary around it.
	duplicateTolerance = 0.1

	defaultPlaceRank = 100
)

var (
	excludedTypes   = []string{"house", "building"}
	excludedClasses = []string{"highway", "building"}
	settlementTypes = []string{"city", "town"}
)

// Service turns free-text queries into ranked, canonical places.
type Service interface {
	// Resolve returns at most limit places for query, best match first. A
	// query shorter than MinQueryLength or a limit below one yields an empty
	// result and no lookup.
	Resolve(ctx context.Context, query string, limit int) ([]types.Place, error)
}

// SearchProvider is the forward geocoder backing the service.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]openstreetmap.SearchResult, error)
}

type locationService struct {
	provider SearchProvider
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewLocationService creates a location service backed by Nominatim behind an
// LRU cache.
func NewLocationService(opts openstreetmap.Options, cacheSize int, metrics *observability.Metrics, logger *slog.Logger) Service {
	client := openstreetmap.NewClient(opts, metrics, logger)
	return NewLocationServiceWithProvider(NewCachedProvider(client, cacheSize, metrics), metrics, logger)
}

// NewLocationServiceWithProvider creates a location service with a custom
// provider. This is useful for testing with mock providers.
func NewLocationServiceWithProvider(provider SearchProvider, metrics *observability.Metrics, logger *slog.Logger) Service {
	return &locationService{
		provider: provider,
		metrics:  metrics,
		logger:   logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve(ctx context.Context, query string, limit int) ([]types.Place, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength || limit <= 0 {
		s.count("skipped")
		return []types.Place{}, nil
	}

	raw, err := s.provider.Search(ctx, query)
	if err != nil {
		s.count("error")
		return nil, err
	}

	places := rankPlaces(raw, limit)
	if len(places) == 0 {
		s.count("empty")
	} else {
		s.count("success")
	}
	s.logger.Debug("resolved query", "query", query, "raw", len(raw), "places", len(places))
	return places, nil
}

func (s *locationService) count(outcome string) {
	if s.metrics != nil {
		s.metrics.GeocodeRequests.WithLabelValues(outcome).Inc()
	}
}

type scoredResult struct {
	result openstreetmap.SearchResult
	score  float64
}

// rankPlaces filters, scores, canonicalizes and deduplicates raw records.
func rankPlaces(raw []openstreetmap.SearchResult, limit int) []types.Place {
	scored := make([]scoredResult, 0, len(raw))
	for _, r := range raw {
		if !acceptable(r) {
			continue
		}
		scored = append(scored, scoredResult{result: r, score: score(r)})
	}

	slices.SortStableFunc(scored, func(a, b scoredResult) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	places := make([]types.Place, 0, min(limit, len(scored)))
	for _, sr := range scored {
		place, ok := toPlace(sr.result)
		if !ok || isDuplicate(places, place) {
			continue
		}
		places = append(places, place)
		if len(places) == limit {
			break
		}
	}
	return places
}

func acceptable(r openstreetmap.SearchResult) bool {
	if slices.Contains(excludedTypes, r.Type) || slices.Contains(excludedClasses, r.Class) {
		return false
	}
	return r.Lat != "" && r.Lon != "" && r.Name != ""
}

func score(r openstreetmap.SearchResult) float64 {
	importance := 0.0
	if r.Importance != nil {
		importance = *r.Importance
	}
	rank := defaultPlaceRank
	if r.PlaceRank != nil {
		rank = *r.PlaceRank
	}

	s := importance*1000 + float64(1000-rank)
	if slices.Contains(settlementTypes, r.Type) {
		s += 500
	}
	if slices.Contains(settlementTypes, r.Addresstype) {
		s += 300
	}
	return s
}

func toPlace(r openstreetmap.SearchResult) (types.Place, bool) {
	name := canonicalName(r)
	if name == "" {
		return types.Place{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(r.Lat), 64)
	if err != nil {
		return types.Place{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(r.Lon), 64)
	if err != nil {
		return types.Place{}, false
	}
	if types.NewCoords(lat, lon).ValidatePlace() != nil {
		return types.Place{}, false
	}

	return types.Place{
		Name:        name,
		Country:     r.Address.Country,
		State:       region(r.Address),
		Lat:         lat,
		Lon:         lon,
		DisplayName: name,
	}, true
}

func isDuplicate(kept []types.Place, p types.Place) bool {
	return slices.ContainsFunc(kept, func(k types.Place) bool {
		return k.Coords().Near(p.Coords(), duplicateTolerance)
	})
}
