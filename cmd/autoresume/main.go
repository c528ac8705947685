// Package main provides the autoresume CLI: bullet rewriting, resume builds and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/autoresume/internal/config"
	"github.com/jonathan/autoresume/internal/lexicon"
	"github.com/jonathan/autoresume/internal/rewriting"
	"github.com/jonathan/autoresume/internal/tagging"
)

var (
	configFile string
	verbose    bool

	// Resolved in PersistentPreRunE
	settings config.Config
	logger   *zap.Logger
	engine   *rewriting.Engine
)

// newLogger builds the process logger. Tests replace it.
var newLogger = func(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

var rootCmd = &cobra.Command{
	Use:   "autoresume",
	Short: "Rule-based resume bullet rewriter",
	Long: "autoresume rewrites free-text experience descriptions into verb-led resume bullets, " +
		"assembles STAR and XYZ narratives, and renders complete resumes as JSON, LaTeX, HTML or PDF.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setup resolves configuration, the logger and the engine for every subcommand.
// Precedence is flags, then config file, then environment, then defaults.
func setup(_ *cobra.Command, _ []string) error {
	loaded := config.Config{}
	if configFile != "" {
		fromFile, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		loaded = *fromFile
	}
	if err := loaded.ApplyEnv(); err != nil {
		return err
	}
	settings = loaded.MergeWithDefaults(config.Defaults())
	if err := settings.Validate(); err != nil {
		return err
	}

	var err error
	logger, err = newLogger(verbose || settings.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	engine = rewriting.Default()
	if settings.Lexicon != "" {
		lex, err := lexicon.LoadFile(settings.Lexicon)
		if err != nil {
			return err
		}
		engine = rewriting.New(lex, tagging.NewProse())
		logger.Debug("using custom lexicon", zap.String("path", settings.Lexicon))
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
