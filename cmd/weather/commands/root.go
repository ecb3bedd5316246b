// Package commands implements the weather command line client. It drives the
// same services as the HTTP API, built from the same configuration.
package commands

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/bihius/weather-app/internal/bootstrap"
	"github.com/bihius/weather-app/internal/config"
	"github.com/bihius/weather-app/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// Env is everything a command needs at run time.
type Env struct {
	Services *bootstrap.Services
	Logger   *slog.Logger
	Clock    clockwork.Clock
	Debounce time.Duration
}

// SetupFunc builds the Env before any command runs.
type SetupFunc func() (*Env, error)

type cli struct {
	setup SetupFunc
	env   *Env
}

func Execute() error {
	return NewRootCmd(defaultSetup).Execute()
}

func defaultSetup() (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := cfg.NewLoggerTo(os.Stderr)
	services, err := bootstrap.Build(cfg, observability.NewMetrics(), logger)
	if err != nil {
		return nil, err
	}

	return &Env{
		Services: services,
		Logger:   logger,
		Clock:    clockwork.NewRealClock(),
		Debounce: cfg.Search.Debounce,
	}, nil
}

func NewRootCmd(setup SetupFunc) *cobra.Command {
	c := &cli{setup: setup}

	root := &cobra.Command{
		Use:          "weather",
		Short:        "Search places, read forecasts and manage favorites",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.setup()
			if err != nil {
				return err
			}
			c.env = env
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.env == nil || c.env.Services == nil {
				return nil
			}
			return c.env.Services.Close()
		},
	}

	root.AddCommand(c.searchCmd(), c.forecastCmd(), c.favoritesCmd(), c.iconCmd())
	return root
}

var errMissingCoords = errors.New("--lat and --lon must be given together")
