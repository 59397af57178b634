package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// writeOutput runs fn against path, or the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, fn func(w io.Writer) error) (err error) {
	if path == "" {
		return fn(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	return fn(f)
}
