package cli

import (
	"github.com/printforge/slicectl/internal/service"
	"github.com/printforge/slicectl/internal/slicer"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Config slicer.Config
	Client slicer.Client
	Slice  service.SliceService
	Jobs   service.JobService // nil when history is disabled

	// IsInteractive reports whether stdin is attached to a terminal.
	// Gates the interactive preset picker.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "slicectl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "slicectl",
		Short:         "Client toolkit for a remote slicing service",
		SilenceErrors: true,
	}

	root.AddCommand(
		newSliceCmd(app),
		newDecodeCmd(),
		newEncodeCmd(),
		newHealthCmd(app),
		newJobsCmd(app),
	)

	return root
}
