package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/audit"
	"github.com/doodlesbykumbi/cryptography-in-go/pkg/vault"
)

// vaultImportCmd represents the vault import command
var vaultImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import entries from a YAML file",
	Long: `Import entries into the vault from a YAML map of key-value pairs.

The file is read from the argument, or from stdin when no argument is given.
Every value is encrypted and written in a single transaction, replacing
existing values.

Example:
  cryptoctl vault import secrets.yml
  echo 'db/password: hunter2' | cryptoctl vault import`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := ""
		if len(args) > 0 {
			filename = args[0]
		}

		store, err := loadVault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to import: %v\n", err)
			os.Exit(1)
		}

		count, err := importEntriesFile(store, filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to import: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Imported %d entries\n", count)
	},
}

func init() {
	vaultCmd.AddCommand(vaultImportCmd)
}

// importEntriesFile imports the YAML map in filename into the store.
// An empty filename reads stdin.
func importEntriesFile(store vault.Store, filename string) (int, error) {
	var data []byte
	var err error
	if filename == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read entries: %w", err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("failed to parse entries: %w", err)
	}

	err = store.Import(entries)

	event := audit.ImportEvent{User: currentUser(), Source: filename, Count: len(entries), Success: err == nil}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)

	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
