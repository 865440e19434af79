package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/audit"
	"github.com/doodlesbykumbi/cryptography-in-go/pkg/vault"
)

// vaultListCmd represents the vault list command
var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vault entries",
	Long: `List the key, TTL and last update time of every vault entry.

Values are never selected from the database, so nothing is decrypted.

Example:
  cryptoctl vault list`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := vaultList()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list entries: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tTTL\tUPDATED")
		for _, entry := range entries {
			ttl := "-"
			if entry.TTL > 0 {
				ttl = entry.TTL.String()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Key, ttl, entry.UpdatedAt.UTC().Format(time.RFC3339))
		}
		_ = w.Flush()
	},
}

func init() {
	vaultCmd.AddCommand(vaultListCmd)
}

func vaultList() ([]vault.Entry, error) {
	store, err := loadVault()
	if err != nil {
		return nil, err
	}

	entries, err := store.List()

	event := audit.ListEvent{User: currentUser(), Count: len(entries), Success: err == nil}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)

	return entries, err
}
