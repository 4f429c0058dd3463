package main

import (
	"encoding/json"
	"fmt"

	"github.com/smriittii/ats-optimizer-pro/internal/ingestion"
	"github.com/smriittii/ats-optimizer-pro/internal/keywords"
	"github.com/smriittii/ats-optimizer-pro/internal/observability"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the keywords extracted from a job description",
	RunE:  runKeywords,
}

var (
	keywordsJob   string
	keywordsCount int
	keywordsJSON  bool
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsJob, "job", "j", "", "Path to the job description (required)")
	keywordsCmd.Flags().IntVarP(&keywordsCount, "count", "n", keywords.DefaultCount, "Maximum number of keywords")
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "Print JSON instead of a table")

	_ = keywordsCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	if keywordsCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	job, _, err := ingestion.ReadFile(keywordsJob)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	kws := keywords.ExtractWithPositions(job, keywordsCount)
	if keywordsJSON {
		out, err := json.MarshalIndent(kws, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal keywords: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(kws) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No keywords found")
		return nil
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintKeywords(kws)
	return nil
}
