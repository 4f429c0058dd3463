package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/smriittii/ats-optimizer-pro/internal/fetch"
	"github.com/smriittii/ats-optimizer-pro/internal/ingestion"
	"github.com/smriittii/ats-optimizer-pro/internal/logging"
	"github.com/smriittii/ats-optimizer-pro/internal/observability"
	"github.com/smriittii/ats-optimizer-pro/internal/schemas"
	"github.com/smriittii/ats-optimizer-pro/internal/scoring"
	rootschemas "github.com/smriittii/ats-optimizer-pro/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a résumé against a job description",
	Long: `Score a résumé against a job description read from a file or fetched from a
job-posting URL. The analysis is written as JSON to --out or stdout.`,
	Example: `  ats_optimizer analyze --resume resume.md --job job.txt
  ats_optimizer analyze --resume resume.txt --job-url https://jobs.lever.co/acme/123 --verbose --out analysis.json`,
	RunE: runAnalyze,
}

var (
	analyzeResume      string
	analyzeJob         string
	analyzeJobURL      string
	analyzeUseBrowser  bool
	analyzeExclude     []string
	analyzeDismiss     []string
	analyzeSeed        uint64
	analyzeOut         string
	analyzeVerbose     bool
	analyzeIncludeText bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to the résumé (.txt, .md or .html)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to the job description")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "job-url", "u", "", "URL of the job posting")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render the job posting in headless Chrome when HTTP text is too short")
	analyzeCmd.Flags().StringArrayVar(&analyzeExclude, "exclude", nil, "Keyword to exclude from scoring (repeatable)")
	analyzeCmd.Flags().StringArrayVar(&analyzeDismiss, "dismiss", nil, "ATS issue to report without penalty (repeatable)")
	analyzeCmd.Flags().Uint64Var(&analyzeSeed, "seed", 0, "Seed for example text, for reproducible output")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the JSON analysis to this file instead of stdout")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a readable summary")
	analyzeCmd.Flags().BoolVar(&analyzeIncludeText, "include-resume-text", false, "Echo the résumé text in the analysis")

	_ = analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagsOneRequired("job", "job-url")
	analyzeCmd.MarkFlagsMutuallyExclusive("job", "job-url")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	resume, _, err := ingestion.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read résumé: %w", err)
	}

	job, err := readJob(cmd)
	if err != nil {
		return err
	}

	opts := scoring.Options{
		ExcludedKeywords:  analyzeExclude,
		DismissedIssues:   analyzeDismiss,
		IncludeResumeText: analyzeIncludeText,
	}
	if cmd.Flags().Changed("seed") {
		opts.ExampleSeed = &analyzeSeed
	}

	analysis, err := scoring.Analyze(resume, job, opts)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if err := schemas.ValidateJSONString(rootschemas.ResumeAnalysis, string(out)); err != nil {
		logger.Warn("analysis does not match schema", zap.Error(err))
	}

	summary := cmd.OutOrStdout()
	if analyzeOut != "" {
		if err := os.WriteFile(analyzeOut, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write analysis: %w", err)
		}
		fmt.Fprintf(summary, "Score: %d/100\n", analysis.Score)
		fmt.Fprintf(summary, "Analysis: %s\n", analyzeOut)
	} else {
		fmt.Fprintln(summary, string(out))
		// Keep stdout valid JSON.
		summary = cmd.ErrOrStderr()
	}

	if analyzeVerbose {
		observability.NewPrinter(summary).PrintAnalysis(analysis)
	}
	return nil
}

// readJob reads the job description from --job or --job-url.
func readJob(cmd *cobra.Command) (string, error) {
	if analyzeJob != "" {
		text, _, err := ingestion.ReadFile(analyzeJob)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return text, nil
	}

	f := fetch.New(fetch.Options{
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
		Logger:    logger,
	})
	text, meta, err := ingestion.FromURL(cmd.Context(), f, analyzeJobURL, analyzeUseBrowser)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	firstLine, _, _ := strings.Cut(text, "\n")
	logger.Info("fetched job posting",
		zap.String("url", meta.URL),
		zap.String("platform", meta.Platform),
		zap.Int("chars", meta.Chars),
		zap.String("preview", logging.Truncate(firstLine, 80)),
	)
	return text, nil
}
