package cli

import (
	"fmt"

	"github.com/printforge/slicectl/internal/gcode"
	"github.com/spf13/cobra"
)

// Default filenames match the service's companion decoder script, so a bare
// "slicectl decode" works on its output.
const (
	defaultDecodeInput  = "base64_input.txt"
	defaultDecodeOutput = "decoded_file.gcode"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [input] [output]",
		Short: "Decode a base64 text file into a G-code file",
		Long: `Decode reads a base64-encoded text file and writes the decoded bytes
to a G-code file, overwriting it if present. Without arguments it reads
` + defaultDecodeInput + ` and writes ` + defaultDecodeOutput + ` in the working directory.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			in := defaultDecodeInput
			out := defaultDecodeOutput
			if len(args) > 0 {
				in = args[0]
			}
			if len(args) > 1 {
				out = args[1]
			}

			n, err := gcode.DecodeFile(in, out)
			if err != nil {
				return err
			}

			fmt.Printf("Decoded %s to %s (%d bytes)\n", in, out, n)
			return nil
		},
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <input> <output>",
		Short: "Encode a binary file as base64 text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			n, err := gcode.EncodeFile(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("Encoded %s to %s (%d bytes)\n", args[0], args[1], n)
			return nil
		},
	}
}
