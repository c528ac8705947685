package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/autoresume/internal/config"
	"github.com/jonathan/autoresume/internal/db"
	"github.com/jonathan/autoresume/internal/experience"
	"github.com/jonathan/autoresume/internal/observability"
	"github.com/jonathan/autoresume/internal/rendering"
	"github.com/jonathan/autoresume/internal/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a complete resume from a raw record",
	Long: "Loads a raw resume record (JSON or YAML), rewrites every entry into STAR or XYZ bullets " +
		"and writes the result as JSON, LaTeX, HTML or PDF.",
	RunE: runBuild,
}

var (
	buildInputFile  string
	buildOutputFile string
	buildFormat     string
	buildTemplate   string
	buildStrict     bool
	buildDBURL      string
)

func init() {
	buildCmd.Flags().StringVarP(&buildInputFile, "input", "i", "", "Path to raw resume JSON or YAML file (required)")
	buildCmd.Flags().StringVarP(&buildOutputFile, "output", "o", "", "Path to output file (stdout when omitted)")
	buildCmd.Flags().StringVar(&buildFormat, "format", "", "Output format: json, tex, html or pdf")
	buildCmd.Flags().StringVarP(&buildTemplate, "template", "t", "", "Path to a LaTeX template (embedded template when omitted)")
	buildCmd.Flags().BoolVar(&buildStrict, "strict", false, "Fail on field validation issues instead of warning")
	buildCmd.Flags().StringVar(&buildDBURL, "db-url", "", "Store the build in this PostgreSQL database")

	if err := buildCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format := firstNonEmpty(buildFormat, settings.Format)
	if format == config.FormatPDF && (buildOutputFile == "" || buildOutputFile == "-") {
		return fmt.Errorf("--output is required for pdf format")
	}

	raw, err := experience.LoadResume(buildInputFile)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	if issues := experience.ValidateResume(raw); len(issues) > 0 {
		if buildStrict || settings.Strict {
			return fmt.Errorf("resume has %d validation issue(s): %s", len(issues), strings.Join(issues, "; "))
		}
		for _, issue := range issues {
			logger.Warn("validation issue", zap.String("issue", issue))
		}
	}

	resume, err := experience.BuildResume(ctx, raw, experience.BuildOptions{
		Engine:        engine,
		MaxXyzBullets: settings.MaxXyzBullets,
		TabooPhrases:  settings.TabooPhrases,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to build resume: %w", err)
	}

	if verbose || settings.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintBuildSummary(resume)
	}

	if dbURL := firstNonEmpty(buildDBURL, settings.DatabaseURL); dbURL != "" {
		if err := storeBuild(ctx, dbURL, raw, resume); err != nil {
			return err
		}
	}

	out, err := renderResume(ctx, resume, format)
	if err != nil {
		return err
	}
	return writeOutput(cmd, buildOutputFile, out)
}

// renderResume encodes a built resume in the requested format
func renderResume(ctx context.Context, resume *types.Resume, format string) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(resume, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal resume: %w", err)
		}
		return append(data, '\n'), nil
	case config.FormatLaTeX:
		tex, err := rendering.RenderLaTeX(resume, firstNonEmpty(buildTemplate, settings.Template))
		if err != nil {
			return nil, fmt.Errorf("failed to render LaTeX: %w", err)
		}
		return []byte(tex), nil
	case config.FormatHTML:
		page, err := rendering.RenderHTML(resume)
		if err != nil {
			return nil, fmt.Errorf("failed to render HTML: %w", err)
		}
		return []byte(page), nil
	case config.FormatPDF:
		page, err := rendering.RenderHTML(resume)
		if err != nil {
			return nil, fmt.Errorf("failed to render HTML: %w", err)
		}
		timeout := time.Duration(settings.PrintTimeoutSeconds) * time.Second
		logger.Debug("printing PDF", zap.Duration("timeout", timeout))
		pdf, err := rendering.PrintPDF(ctx, page, timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to print PDF: %w", err)
		}
		return pdf, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want json, tex, html or pdf)", format)
	}
}

func storeBuild(ctx context.Context, dbURL string, raw *types.RawResume, resume *types.Resume) error {
	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	id, err := database.SaveBuild(ctx, raw, resume)
	if err != nil {
		return err
	}
	logger.Info("build stored", zap.String("id", id.String()))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
