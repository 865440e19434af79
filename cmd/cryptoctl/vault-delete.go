package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/audit"
)

// vaultDeleteCmd represents the vault delete command
var vaultDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a vault entry",
	Long: `Delete the entry stored under the given key.

The command exits non-zero when the entry does not exist.

Example:
  cryptoctl vault delete db/password`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]

		if err := vaultDelete(key); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete %s: %v\n", key, err)
			os.Exit(1)
		}

		fmt.Printf("Deleted '%s'\n", key)
	},
}

func init() {
	vaultCmd.AddCommand(vaultDeleteCmd)
}

func vaultDelete(key string) error {
	store, err := loadVault()
	if err != nil {
		return err
	}

	err = store.Delete(key)

	event := audit.DeleteEvent{User: currentUser(), Key: key, Success: err == nil}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)

	return err
}
