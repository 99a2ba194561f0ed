package cli

import (
	"context"
	"fmt"

	"github.com/printforge/slicectl/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the slicing service health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			health, err := app.Client.Health(context.Background())
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderHealth(app.Config.Endpoint, health))
			return nil
		},
	}
}
