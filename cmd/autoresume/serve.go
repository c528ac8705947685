package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/autoresume/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the rewrite engine and resume builds as JSON endpoints. Builds are stored when a database URL is configured.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	port := settings.Port
	if servePort != 0 {
		port = servePort
	}

	cfg := server.Config{
		Port:          port,
		DatabaseURL:   settings.DatabaseURL,
		MaxXyzBullets: settings.MaxXyzBullets,
		TabooPhrases:  settings.TabooPhrases,
		Strict:        settings.Strict,
	}

	srv, err := server.New(ctx, cfg, engine, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
