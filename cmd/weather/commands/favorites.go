package commands

import (
	"fmt"
	"strings"

	"github.com/bihius/weather-app/internal/favorites"
	"github.com/spf13/cobra"
)

func (c *cli) favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List or toggle favorite places",
	}
	cmd.AddCommand(c.favoritesListCmd(), c.favoritesToggleCmd())
	return cmd
}

func (c *cli) favoritesListCmd() *cobra.Command {
	var withWeather bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List favorite places",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			list, err := c.env.Services.Favorites.List(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "no favorites yet")
				return nil
			}

			unit, err := c.env.Services.Settings.Unit(ctx)
			if err != nil {
				return err
			}

			for _, f := range list {
				line := favorites.Encode(f.City, f.Lat, f.Lon)
				if withWeather && f.HasCoords() {
					current, err := c.env.Services.Weather.GetCurrent(ctx, *f.Lat, *f.Lon)
					if err != nil {
						c.env.Logger.Warn("failed to get current weather for favorite", "id", line, "error", err)
					} else {
						line = fmt.Sprintf("%s  %s %s", line, unit.Format(float64(current.TemperatureC)), current.Icon)
					}
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withWeather, "weather", "w", false, "show current temperature for favorites with coordinates")
	return cmd
}

func (c *cli) favoritesToggleCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "toggle <city>",
		Short: "Add a place to favorites, or remove it if it is one already",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			latSet, lonSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
			if latSet != lonSet {
				return errMissingCoords
			}

			var latPtr, lonPtr *float64
			if latSet {
				latPtr, lonPtr = &lat, &lon
			}

			city := strings.Join(args, " ")
			added, ids, err := c.env.Services.Favorites.Toggle(cmd.Context(), city, latPtr, lonPtr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if added {
				fmt.Fprintf(out, "added %s\n", city)
			} else {
				fmt.Fprintf(out, "removed %s\n", city)
			}
			fmt.Fprintf(out, "%d favorites\n", len(ids))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in decimal degrees")
	return cmd
}
