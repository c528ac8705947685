package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/autoresume/internal/experience"
	"github.com/jonathan/autoresume/internal/schemas"
	schemafiles "github.com/jonathan/autoresume/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a raw or built resume file",
	Long: "Checks a raw resume record (JSON or YAML) against its schema and field formats, " +
		"or a built resume JSON file against the output schema with --built.",
	RunE: runValidate,
}

var (
	validateInputFile string
	validateBuilt     bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "input", "i", "", "Path to the file to validate (required)")
	validateCmd.Flags().BoolVar(&validateBuilt, "built", false, "Validate a built resume instead of a raw record")

	if err := validateCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if validateBuilt {
		if err := schemas.ValidateFile(schemafiles.Resume, validateInputFile); err != nil {
			_, _ = fmt.Fprintf(out, "Validation failed\n")
			return err
		}
		_, _ = fmt.Fprintf(out, "Validation passed\n")
		return nil
	}

	raw, err := experience.LoadResume(validateInputFile)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Validation failed\n")
		return err
	}
	if issues := experience.ValidateResume(raw); len(issues) > 0 {
		_, _ = fmt.Fprintf(out, "Validation failed\n")
		for i, issue := range issues {
			_, _ = fmt.Fprintf(out, "  %d. %s\n", i+1, issue)
		}
		return fmt.Errorf("%d validation issue(s)", len(issues))
	}

	_, _ = fmt.Fprintf(out, "Validation passed\n")
	return nil
}
