package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/printforge/slicectl/internal/cli/formatter"
	"github.com/printforge/slicectl/internal/domain"
	"github.com/printforge/slicectl/internal/service"
	"github.com/spf13/cobra"
)

func newSliceCmd(app *App) *cobra.Command {
	var printer, filament, process string
	var params []string
	var interactive, noHistory bool

	cmd := &cobra.Command{
		Use:   "slice <model> <output>",
		Short: "Slice a 3D model via the remote service and save the G-code",
		Long: `Slice uploads a model file (STL/3MF/AMF/OBJ) to the slicing service,
waits for the result, and writes the returned G-code to the output path.
Print statistics are reported on the console.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()

			presets := domain.PresetSelection{
				Printer:  printer,
				Filament: filament,
				Process:  process,
			}
			if interactive {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				picked, err := runPresetPicker(app.Config, presets)
				if err != nil {
					return err
				}
				presets = picked
			}

			customParams, err := parseCustomParams(params)
			if err != nil {
				return err
			}

			stop := func() {}
			if app.IsInteractive != nil && app.IsInteractive() {
				stop = formatter.StartSpinner("Slicing " + args[0] + "...")
			}
			outcome, err := app.Slice.SliceFile(ctx, service.SliceFileParams{
				ModelPath:    args[0],
				OutputPath:   args[1],
				Presets:      presets,
				CustomParams: customParams,
				SkipHistory:  noHistory,
			})
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderSliceSummary(outcome.Job))
			if outcome.HistoryErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", outcome.HistoryErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&printer, "printer", "", "Printer preset name")
	cmd.Flags().StringVar(&filament, "filament", "", "Filament preset name")
	cmd.Flags().StringVar(&process, "process", "", "Process preset name")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Custom slicer parameter as key=value (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick presets interactively")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this job in the local history")

	return cmd
}

// parseCustomParams converts repeated key=value flags into wire pairs.
func parseCustomParams(raw []string) ([][2]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	pairs := make([][2]string, 0, len(raw))
	for _, p := range raw {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q: expected key=value", p)
		}
		pairs = append(pairs, [2]string{key, value})
	}
	return pairs, nil
}
