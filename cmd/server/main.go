package main

import (
	"fmt"
	"os"

	"deal-analytics/internal/shared/configs"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "./configs/configs.yml"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "deal-analytics",
		Short:         "Webhook sales-pipeline analytics: ingestion, daily aggregates and KPIs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the YAML config file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(resetCmd())

	// Running the binary without a subcommand serves, like the plain server always did.
	rootCmd.RunE = serveCmd().RunE

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*configs.Config, error) {
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
