package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smriittii/ats-optimizer-pro/internal/db"
	"github.com/smriittii/ats-optimizer-pro/internal/llm"
	"github.com/smriittii/ats-optimizer-pro/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the analysis endpoints.

History is enabled when DATABASE_URL is set, AI section suggestions when
GEMINI_API_KEY is set, and bearer-token auth when ATS_AUTH_SECRET is set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, cleanup, err := serverOptions(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return server.New(opts).Start(ctx)
}

// serverOptions connects the optional collaborators named in cfg. On success
// cleanup releases them.
func serverOptions(ctx context.Context) (server.Options, func(), error) {
	opts := server.Options{Config: cfg, Logger: logger}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.HistoryEnabled() {
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return opts, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		closers = append(closers, database.Close)
		if err := database.EnsureSchema(ctx); err != nil {
			cleanup()
			return opts, nil, fmt.Errorf("failed to prepare database: %w", err)
		}
		opts.History = database
		logger.Info("analysis history enabled")
	}

	if cfg.AIEnabled() {
		tier, err := llm.ParseTier(cfg.AI.Model)
		if err != nil {
			cleanup()
			return opts, nil, err
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.AI.APIKey)
		if err != nil {
			cleanup()
			return opts, nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })
		opts.Suggester = llm.NewSectionSuggester(client, tier)
		logger.Info("AI suggestions enabled", zap.String("tier", string(tier)))
	}

	if cfg.AuthEnabled() {
		tokens, err := server.NewJWTService(cfg.Auth)
		if err != nil {
			cleanup()
			return opts, nil, err
		}
		opts.Tokens = tokens
		logger.Info("token auth enabled")
	}

	return opts, cleanup, nil
}
