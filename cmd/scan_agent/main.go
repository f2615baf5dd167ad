// Package main provides the entry point for the site visibility scanner.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scan_agent",
	Short: "AI visibility scanner for brokerage websites",
	Long:  "Scans a website, derives structural and content signals, scores page quality deterministically, and optionally runs a generative enrichment pass anchored to the deterministic scores.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
