package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bihius/weather-app/internal/location"
	"github.com/bihius/weather-app/internal/search"
	"github.com/bihius/weather-app/internal/types"
	"github.com/spf13/cobra"
)

func (c *cli) searchCmd() *cobra.Command {
	var (
		limit       int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search places by name",
		Long: "Search places by name. With --interactive every line read from stdin " +
			"is treated as an edit of the query and only the query that stays " +
			"unchanged for the debounce period is looked up.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return c.searchInteractive(cmd, limit)
			}
			if len(args) == 0 {
				return fmt.Errorf("a query is required unless --interactive is set")
			}

			places, err := c.env.Services.Location.Resolve(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			printPlaces(cmd.OutOrStdout(), places)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", location.DefaultLimit, "maximum number of places")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read queries from stdin as they are typed")
	return cmd
}

// searchInteractive feeds stdin lines to a debouncer and prints the result of
// the newest query. It returns once input ends and the last query resolved.
func (c *cli) searchInteractive(cmd *cobra.Command, limit int) error {
	d := search.NewDebouncer(c.env.Services.Location, c.env.Clock, c.env.Debounce, limit, c.env.Logger)
	defer d.Close()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	out := cmd.OutOrStdout()
	var (
		latest  uint64
		pending bool
	)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				if !pending {
					return nil
				}
				lines = nil
				continue
			}
			latest = d.Submit(line)
			pending = true

		case res := <-d.Results():
			if res.Seq != latest {
				continue
			}
			pending = false
			if res.Err != nil {
				fmt.Fprintf(out, "search for %q failed: %v\n", res.Query, res.Err)
			} else {
				fmt.Fprintf(out, "> %s\n", res.Query)
				printPlaces(out, res.Places)
			}
			if lines == nil {
				return nil
			}

		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	}
}

func printPlaces(w io.Writer, places []types.Place) {
	if len(places) == 0 {
		fmt.Fprintln(w, "no places found")
		return
	}
	for i, p := range places {
		fmt.Fprintf(w, "%d. %s (%.4f, %.4f)\n", i+1, p.DisplayName, p.Lat, p.Lon)
	}
}
