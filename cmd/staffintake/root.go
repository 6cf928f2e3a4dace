package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/staff-data-intake/internal/config"
	"github.com/staff-data-intake/pkg/logger"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "staffintake",
	Short: "Collect staff details from a terminal form or a web form",
	Long: `staffintake records staff name, number, cadre and meal type into SQLite
and a CSV file. Run "serve" for the web form (with a QR code for phones on
the local network) or "collect" for the interactive terminal form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.New(config.LogConfig{Level: "error", Format: "pretty"}, os.Stderr)
		log.Fatal().Err(err).Msg("staffintake failed")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (defaults to $CONFIG_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(qrCmd)
	rootCmd.AddCommand(initCmd)
}
