package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/audit"
)

// vaultGetCmd represents the vault get command
var vaultGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Retrieve a decrypted value",
	Long: `Retrieve the value stored under the given key.

The value is decrypted and written to stdout. The command exits non-zero when
the entry does not exist, has expired, or fails signature verification.

Example:
  cryptoctl vault get db/password`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]

		value, err := vaultGet(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get %s: %v\n", key, err)
			os.Exit(1)
		}

		_, _ = os.Stdout.Write(value)
	},
}

func init() {
	vaultCmd.AddCommand(vaultGetCmd)
}

func vaultGet(key string) ([]byte, error) {
	store, err := loadVault()
	if err != nil {
		return nil, err
	}

	entry, err := store.Get(key)

	event := audit.FetchEvent{User: currentUser(), Key: key, Success: err == nil}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)

	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}
