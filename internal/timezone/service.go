package timezone

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/ringsaturn/tzf"
)

// Service resolves the local timezone of a coordinate offline.
type Service interface {
	// GetTimezone returns the IANA name, e.g. "Europe/Warsaw".
	GetTimezone(latitude, longitude float64) (string, error)
	// Location is GetTimezone loaded as a *time.Location.
	Location(latitude, longitude float64) (*time.Location, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// tzf loads its polygon data into memory, so it is built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}

func (s *service) Location(latitude, longitude float64) (*time.Location, error) {
	name, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}
