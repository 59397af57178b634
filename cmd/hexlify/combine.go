package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type combineFlags struct {
	encoderFlags
	outputPath string
}

func newCombineCmd(state *appState) *cobra.Command {
	flags := &combineFlags{}

	cmd := &cobra.Command{
		Use:   "combine <firmware.hex> <script>",
		Short: "Combine MicroPython firmware with a script",
		Long: `Produce a HEX file ready for uploading to the micro:bit. The script records
are placed before the firmware's UICR region, or before its closing start
address and end-of-file records when it has none.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, state, flags, args[0], args[1])
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Write combined HEX to file (default stdout)")

	return cmd
}

func runCombine(cmd *cobra.Command, state *appState, flags *combineFlags, firmwarePath, scriptPath string) error {
	payload, err := readPayload(cmd, scriptPath, flags.raw)
	if err != nil {
		return err
	}

	fw, err := os.Open(firmwarePath)
	if err != nil {
		return fmt.Errorf("open firmware: %w", err)
	}
	defer func() { _ = fw.Close() }()

	enc := state.encoder(flags.apply(cmd, state.cfg.Encoder))
	return writeOutput(cmd, flags.outputPath, func(w io.Writer) error {
		return enc.Combine(w, fw, payload)
	})
}
