package main

import (
	"fmt"
	"time"

	"github.com/smriittii/ats-optimizer-pro/internal/server"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API token for a client",
	Long:  "Issue an HS256 bearer token for the API. Requires auth.secret (ATS_AUTH_SECRET).",
	RunE:  runToken,
}

var (
	tokenClient string
	tokenTTL    time.Duration
)

func init() {
	tokenCmd.Flags().StringVar(&tokenClient, "client", "", "Client id to issue the token to (required)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime (default auth.token-ttl)")

	_ = tokenCmd.MarkFlagRequired("client")

	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	if !cfg.AuthEnabled() {
		return fmt.Errorf("auth.secret is not configured; set ATS_AUTH_SECRET")
	}

	authCfg := cfg.Auth
	if tokenTTL > 0 {
		authCfg.TokenTTL = tokenTTL
	}
	svc, err := server.NewJWTService(authCfg)
	if err != nil {
		return err
	}

	token, expiresAt, err := svc.GenerateToken(tokenClient)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "Expires: %s\n", expiresAt.UTC().Format(time.RFC3339))
	return nil
}
