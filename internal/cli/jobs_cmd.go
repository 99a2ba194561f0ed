package cli

import (
	"context"
	"fmt"

	"github.com/printforge/slicectl/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newJobsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse recorded slicing jobs",
	}

	cmd.AddCommand(
		newJobsListCmd(app),
		newJobsShowCmd(app),
		newJobsRemoveCmd(app),
	)

	return cmd
}

func requireHistory(app *App) error {
	if app.Jobs == nil {
		return fmt.Errorf("job history is disabled (SLICECTL_DB=off)")
	}
	return nil
}

func newJobsListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := requireHistory(app); err != nil {
				return err
			}

			jobs, err := app.Jobs.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderJobTable(jobs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of jobs to show")

	return cmd
}

func newJobsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show a recorded job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := requireHistory(app); err != nil {
				return err
			}

			job, err := app.Jobs.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderJobDetail(job))
			return nil
		},
	}
}

func newJobsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <job-id>",
		Short: "Remove a recorded job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := requireHistory(app); err != nil {
				return err
			}

			if err := app.Jobs.Delete(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed job %s\n", args[0])
			return nil
		},
	}
}
