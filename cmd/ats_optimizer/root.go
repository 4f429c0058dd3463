package main

import (
	"fmt"

	"github.com/smriittii/ats-optimizer-pro/internal/config"
	"github.com/smriittii/ats-optimizer-pro/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ats_optimizer",
	Short: "Score résumés against job descriptions for ATS compatibility",
	Long: `ats_optimizer scores how well a résumé matches a job description the way an
applicant tracking system would, explains the score, and suggests fixes.
It runs as a CLI or as an HTTP API.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(*cobra.Command, []string) { _ = logger.Sync() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (json, console)")
}

// loadConfig builds cfg and logger from defaults, the config file, the
// environment and the persistent flags.
func loadConfig(cmd *cobra.Command, _ []string) error {
	v := config.New()
	if cmd.Name() != "serve" {
		// Interactive commands log only warnings, readably.
		v.SetDefault("log.format", "console")
		v.SetDefault("log.level", "warn")
	}

	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("log.level", flags.Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.format", flags.Lookup("log-format")); err != nil {
		return err
	}

	loaded, err := config.Load(v, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logging.New(loaded.Log.Level, loaded.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg = loaded
	logger = l
	return nil
}
