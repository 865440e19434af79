package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/audit"
)

// vaultSetCmd represents the vault set command
var vaultSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Store an encrypted value",
	Long: `Store a value in the vault under the given key.

The value is read from the second argument, or from stdin when only the key
is given. The value is encrypted before it reaches the database, replacing
any previous value. Pass --ttl to bound how long reads return the value.

Example:
  cryptoctl vault set db/password hunter2
  cat server.pem | cryptoctl vault set certs/server
  cryptoctl vault set session/token s3cr3t --ttl 1h`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ttl, _ := cmd.Flags().GetDuration("ttl")
		key := args[0]

		value, err := readInput(args[1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
			os.Exit(1)
		}

		if err := vaultSet(key, value, ttl); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to set %s: %v\n", key, err)
			os.Exit(1)
		}

		fmt.Printf("Value set for '%s'\n", key)
	},
}

func init() {
	vaultCmd.AddCommand(vaultSetCmd)
	vaultSetCmd.Flags().Duration("ttl", 0, "Expire the value after this duration (default: never)")
}

func vaultSet(key string, value []byte, ttl time.Duration) error {
	store, err := loadVault()
	if err != nil {
		return err
	}

	err = store.Set(key, value, ttl)

	event := audit.SetEvent{User: currentUser(), Key: key, TTL: ttl, Success: err == nil}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)

	return err
}
