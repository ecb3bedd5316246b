package commands

import (
	"fmt"

	"github.com/bihius/weather-app/internal/types"
	"github.com/spf13/cobra"
)

func (c *cli) forecastCmd() *cobra.Command {
	var (
		lat, lon float64
		unit     string
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Show current conditions and the next five days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			display, err := c.unit(cmd, unit)
			if err != nil {
				return err
			}

			snapshot, err := c.env.Services.Weather.GetSnapshot(ctx, lat, lon)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Now: %s, %s\n", display.Format(float64(snapshot.TemperatureC)), snapshot.Conditions.Description)
			fmt.Fprintf(out, "Wind: %d km/h %s\n", snapshot.Wind.SpeedKmh, snapshot.Wind.Direction)
			fmt.Fprintf(out, "Precipitation: %d%% (%s)\n", snapshot.Precipitation.Probability, snapshot.Precipitation.Type)
			fmt.Fprintf(out, "Cloud cover: %d%%\n", snapshot.CloudCoverPct)
			for _, day := range snapshot.Forecast {
				fmt.Fprintf(out, "%-10s %6s  %s\n", day.Day, display.Format(float64(day.TemperatureC)), day.Icon)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in decimal degrees")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "celsius, fahrenheit or kelvin (default: saved setting)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}

// unit returns the explicit unit when given and the saved one otherwise.
func (c *cli) unit(cmd *cobra.Command, explicit string) (types.TemperatureUnit, error) {
	if explicit != "" {
		return types.ParseTemperatureUnit(explicit)
	}
	return c.env.Services.Settings.Unit(cmd.Context())
}
