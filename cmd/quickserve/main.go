package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/quickserve/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "quickserve",
	Short:   "Minimal JSON HTTP API server",
	Long: `quickserve is a small JSON API server with a health check, an example
create endpoint and an example lookup endpoint. Every failure is answered
with a single JSON error body.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFiles, _ := cmd.Flags().GetStringSlice("config")

		cfg, err := config.Load(configFiles, cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		setupLogging(cfg)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringSlice("config", nil, "config file path, repeatable; later files override earlier ones (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("env", "", "environment: development, production, test (default: development, env: QUICKSERVE_ENV or APP_ENV)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: QUICKSERVE_LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
