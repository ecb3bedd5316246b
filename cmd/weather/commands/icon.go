package commands

import (
	"fmt"

	"github.com/bihius/weather-app/internal/icons"
	"github.com/spf13/cobra"
)

func (c *cli) iconCmd() *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "icon <token>",
		Short: "Print the asset path for an icon name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved := icons.ParseTheme(theme)
			if theme == "" {
				saved, err := c.env.Services.Settings.Get(cmd.Context())
				if err != nil {
					return err
				}
				resolved = saved.Theme
			}

			fmt.Fprintln(cmd.OutOrStdout(), c.env.Services.Icons.Path(args[0], resolved))
			return nil
		},
	}

	cmd.Flags().StringVarP(&theme, "theme", "t", "", "light or dark (default: saved setting)")
	return cmd
}
