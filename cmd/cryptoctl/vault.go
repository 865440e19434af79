package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/config"
	"github.com/doodlesbykumbi/cryptography-in-go/pkg/db"
	"github.com/doodlesbykumbi/cryptography-in-go/pkg/vault"
	vaultgorm "github.com/doodlesbykumbi/cryptography-in-go/pkg/vault/gorm"
)

// vaultCmd represents the vault command
var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage encrypted vault entries",
	Long:  `Manage entries in the encrypted key-value vault.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'vault' requires a subcommand (set, get, list, delete, import, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(vaultCmd)
}

// loadVault builds the vault store: config, cipher, database connection
// with the fernet plugin registered.
func loadVault() (vault.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cipher, err := cfg.Cipher()
	if err != nil {
		return nil, err
	}

	database, err := db.Connect(db.Config{URL: cfg.DatabaseURL, Cipher: cipher})
	if err != nil {
		return nil, err
	}

	return vaultgorm.NewStore(database), nil
}

// currentUser names the operator for audit events.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "unknown"
}
