package main

import (
	"encoding/json"
	"fmt"

	"github.com/smriittii/ats-optimizer-pro/internal/ingestion"
	"github.com/smriittii/ats-optimizer-pro/internal/observability"
	"github.com/smriittii/ats-optimizer-pro/internal/sections"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Show how a résumé is split into sections",
	RunE:  runSections,
}

var (
	sectionsResume string
	sectionsJSON   bool
)

func init() {
	sectionsCmd.Flags().StringVarP(&sectionsResume, "resume", "r", "", "Path to the résumé (required)")
	sectionsCmd.Flags().BoolVar(&sectionsJSON, "json", false, "Print section name to content as JSON")

	_ = sectionsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, _ []string) error {
	resume, _, err := ingestion.ReadFile(sectionsResume)
	if err != nil {
		return fmt.Errorf("failed to read résumé: %w", err)
	}

	doc := sections.Segment(resume)
	if sectionsJSON {
		out, err := json.MarshalIndent(doc.Map(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sections: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintDocument(doc)
	return nil
}
