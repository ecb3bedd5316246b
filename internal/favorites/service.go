package favorites

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/bihius/weather-app/internal/events"
	"github.com/bihius/weather-app/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Service toggles and lists favorite places.
type Service interface {
	// Toggle adds the place if it is not a favorite yet and removes it
	// otherwise. It returns whether the place was added and the resulting ids.
	Toggle(ctx context.Context, city string, lat, lon *float64) (bool, []string, error)
	List(ctx context.Context) ([]Identity, error)
	IsFavorite(ctx context.Context, city string, lat, lon *float64) (bool, error)
}

type favoritesService struct {
	store     Store
	publisher events.Publisher
	metrics   *observability.Metrics
	clock     clockwork.Clock
	logger    *slog.Logger
}

func NewService(store Store, publisher events.Publisher, metrics *observability.Metrics, logger *slog.Logger) Service {
	return NewServiceWithClock(store, publisher, metrics, clockwork.NewRealClock(), logger)
}

// NewServiceWithClock is NewService with an injectable clock for event timestamps.
func NewServiceWithClock(store Store, publisher events.Publisher, metrics *observability.Metrics, clock clockwork.Clock, logger *slog.Logger) Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &favoritesService{
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		clock:     clock,
		logger:    logger.With("component", "favorites-service"),
	}
}

func (s *favoritesService) Toggle(ctx context.Context, city string, lat, lon *float64) (bool, []string, error) {
	id := Encode(city, lat, lon)
	target := Decode(id)

	var added bool
	ids, err := s.store.Update(ctx, func(ids []string) ([]string, error) {
		kept := slices.DeleteFunc(ids, func(existing string) bool {
			return existing == id || Decode(existing).Equal(target)
		})
		added = len(kept) == len(ids)
		if added {
			return append(kept, id), nil
		}
		return kept, nil
	})
	if err != nil {
		return false, nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	action := events.FavoriteRemoved
	label := "removed"
	if added {
		action = events.FavoriteAdded
		label = "added"
	}
	if s.metrics != nil {
		s.metrics.FavoriteToggles.WithLabelValues(label).Inc()
	}
	s.logger.Info("favorite toggled", "id", id, "action", label, "count", len(ids))

	event := events.FavoriteEvent{
		Type:       action,
		ID:         id,
		City:       target.City,
		Lat:        target.Lat,
		Lon:        target.Lon,
		OccurredAt: s.clock.Now().UTC(),
	}
	// The toggle is already committed; a lost event must not undo it.
	if err := s.publisher.PublishFavorite(ctx, event); err != nil {
		s.logger.Warn("failed to publish favorite event", "id", id, "error", err)
	}

	return added, ids, nil
}

func (s *favoritesService) List(ctx context.Context) ([]Identity, error) {
	ids, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	out := make([]Identity, 0, len(ids))
	for _, id := range ids {
		out = append(out, Decode(id))
	}
	return out, nil
}

func (s *favoritesService) IsFavorite(ctx context.Context, city string, lat, lon *float64) (bool, error) {
	ids, err := s.store.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list favorites: %w", err)
	}

	id := Encode(city, lat, lon)
	target := Decode(id)
	for _, existing := range ids {
		if existing == id || Decode(existing).Equal(target) {
			return true, nil
		}
	}
	return false, nil
}
