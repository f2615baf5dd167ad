package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jordan/visibility-scanner/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scanner HTTP API",
	Long:  "Starts the HTTP API for running scans and, when a database is configured, listing and retrieving past scans.",
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP port (overrides config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return err
	}

	return srv.Start()
}
