package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/autoresume/internal/observability"
	"github.com/jonathan/autoresume/internal/schemas"
	"github.com/jonathan/autoresume/internal/types"
	schemafiles "github.com/jonathan/autoresume/schemas"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check the bullets of a built resume",
	Long:  "Runs the style checks and taboo phrase scan over every bullet of a built resume JSON file. Exits non-zero when any bullet fails.",
	RunE:  runLint,
}

var lintInputFile string

func init() {
	lintCmd.Flags().StringVarP(&lintInputFile, "input", "i", "", "Path to built resume JSON file (required)")

	if err := lintCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, _ []string) error {
	if err := schemas.ValidateFile(schemafiles.Resume, lintInputFile); err != nil {
		return err
	}

	data, err := os.ReadFile(lintInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	reports := engine.Lint(&resume, settings.TabooPhrases)
	observability.NewPrinter(cmd.OutOrStdout()).PrintLintReports(reports)

	failures := 0
	for _, r := range reports {
		if !r.StyleChecks.OK() || len(r.TabooPhrases) > 0 {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d bullet(s) failed lint", failures)
	}
	return nil
}
