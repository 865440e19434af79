package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/config"
)

// configCheckCmd represents the config check command
var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long: `Validate the current state of the configuration file and environment.

The check fails when the config file is malformed, the digest or iteration
count is invalid, or no secret is configured. Pass --database to also require
DATABASE_URL.

Example:
  cryptoctl config check
  cryptoctl config check --database`,
	Run: func(cmd *cobra.Command, args []string) {
		database, _ := cmd.Flags().GetBool("database")

		if err := checkConfig(database); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration check failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Configuration is valid.")
	},
}

func init() {
	configCmd.AddCommand(configCheckCmd)
	configCheckCmd.Flags().Bool("database", false, "Also require a database URL")
}

func checkConfig(database bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("Config file: %s\n", cfg.ConfigFilePath())

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Check the key material derives
	if _, err := cfg.DerivedKey(); err != nil {
		return err
	}

	if database && cfg.DatabaseURL == "" && os.Getenv("DATABASE_URL") == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	return nil
}
