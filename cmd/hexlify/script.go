package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-hexlify/script"
)

type scriptFlags struct {
	encoderFlags
	outputPath string
}

func newScriptCmd(state *appState) *cobra.Command {
	flags := &scriptFlags{}

	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Encode a script as Intel HEX records",
		Long: `Encode a MicroPython script as Intel HEX records to be concatenated onto
a firmware image. The script is read from file, or from standard input when
file is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, state, flags, args)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Write records to file (default stdout)")

	return cmd
}

func runScript(cmd *cobra.Command, state *appState, flags *scriptFlags, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	payload, err := readPayload(cmd, path, flags.raw)
	if err != nil {
		return err
	}

	enc := state.encoder(flags.apply(cmd, state.cfg.Encoder))
	out, err := enc.Encode(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return writeOutput(cmd, flags.outputPath, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, out)
		return err
	})
}

// readPayload reads a script from path ("-" for stdin) and, unless raw is
// set, maps its text to single-byte characters.
func readPayload(cmd *cobra.Command, path string, raw bool) ([]byte, error) {
	var payload []byte
	var err error
	if path == "-" {
		payload, err = script.Read(cmd.InOrStdin())
	} else {
		payload, err = script.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}

	if raw {
		return payload, nil
	}

	payload, err = script.FromText(string(payload))
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return payload, nil
}
