package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// readText returns the text from positional args, or from --file when no args are given
func readText(args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file == "" {
		return "", fmt.Errorf("no input text: pass it as arguments or with --file")
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// writeOutput writes data to path, or to the command's stdout when path is empty or "-"
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func printBullets(cmd *cobra.Command, bullets []string) {
	out := cmd.OutOrStdout()
	for _, b := range bullets {
		_, _ = fmt.Fprintln(out, b)
	}
}
