package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordan/visibility-scanner/internal/config"
	"github.com/jordan/visibility-scanner/internal/observability"
	"github.com/jordan/visibility-scanner/internal/pipeline"
	"github.com/jordan/visibility-scanner/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan one URL and print the signal record and scores",
	Long:  "Fetches a URL, derives its signal record, computes the deterministic quality report and SALT anchor, and optionally runs the generative enrichment pass.",
	RunE:  runScan,
}

var (
	scanURL           string
	scanConfigPath    string
	scanOutputPath    string
	scanEnrich        bool
	scanUseBrowser    bool
	scanAllowDegraded bool
	scanVerbose       bool
	scanFactSheet     bool
	scanAPIKey        string
)

func init() {
	scanCmd.Flags().StringVarP(&scanURL, "url", "u", "", "URL to scan (required)")
	scanCmd.Flags().StringVarP(&scanConfigPath, "config", "c", "", "Path to JSON config file")
	scanCmd.Flags().StringVarP(&scanOutputPath, "out", "o", "", "Write JSON result to this file instead of stdout")
	scanCmd.Flags().BoolVar(&scanEnrich, "enrich", false, "Run the generative enrichment pass")
	scanCmd.Flags().BoolVar(&scanUseBrowser, "use-browser", false, "Fall back to headless browser rendering for SPA sites")
	scanCmd.Flags().BoolVar(&scanAllowDegraded, "allow-degraded", false, "Produce a degraded result instead of failing when the site is unreachable")
	scanCmd.Flags().BoolVar(&scanVerbose, "verbose", false, "Print detailed trace information")
	scanCmd.Flags().BoolVar(&scanFactSheet, "fact-sheet", false, "Print the generative-grounding fact sheet instead of JSON")
	scanCmd.Flags().StringVar(&scanAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	if err := scanCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(scanConfigPath)
	if err != nil {
		return err
	}
	if scanAPIKey != "" {
		cfg.APIKey = scanAPIKey
	}

	opts := pipeline.Options{
		UserAgent:     cfg.UserAgent,
		Timeout:       time.Duration(cfg.TimeoutSeconds) * time.Second,
		UseBrowser:    scanUseBrowser || cfg.UseBrowser,
		Verbose:       scanVerbose || cfg.Verbose,
		AllowDegraded: scanAllowDegraded,
	}
	if scanEnrich {
		if cfg.APIKey == "" {
			return fmt.Errorf("enrichment requires an API key: set --api-key or GEMINI_API_KEY")
		}
		opts.APIKey = cfg.APIKey
	}

	outcome, err := pipeline.Run(context.Background(), scanURL, opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintSignals(outcome.Signals)
		printer.PrintQualityReport(outcome.Report)
		printer.PrintAnchor(outcome.Anchor)
		printer.PrintEnrichment(outcome.Enrichment)
	}

	if scanFactSheet {
		_, _ = fmt.Fprint(os.Stdout, report.BuildFactSheet(outcome.Signals, outcome.Report, outcome.Anchor))
		return nil
	}

	out, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if scanOutputPath != "" {
		if err := os.WriteFile(scanOutputPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write result file %s: %w", scanOutputPath, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Result written to %s\n", scanOutputPath)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// loadConfig merges a config file (when given) with defaults and env vars.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Defaults()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded.MergeWithDefaults(config.Defaults())
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
