package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/config"
	"github.com/doodlesbykumbi/cryptography-in-go/pkg/crypto"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [token]",
	Short: "Decrypt a Fernet token",
	Long: `Decrypt a Fernet token.

The token is read from the argument, or from stdin when no argument is given.
Pass --ttl to reject tokens older than the given duration. The command exits
non-zero when the token is malformed, forged, or expired.

Example:
  cryptoctl decrypt "gAAAAGT..."
  cryptoctl decrypt --ttl 1h "gAAAAGT..."
  cryptoctl encrypt "attack at dawn" | cryptoctl decrypt`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key, _ := cmd.Flags().GetString("key")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		token, err := readInputString(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
			os.Exit(1)
		}

		data, err := decryptToken(token, key, ttl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to decrypt: %v\n", err)
			os.Exit(1)
		}

		_, _ = os.Stdout.Write(data)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().StringP("key", "k", "", "Standalone Fernet key (default: derive from the configured secret)")
	decryptCmd.Flags().Duration("ttl", 0, "Reject tokens older than this duration (default: no limit)")
}

func decryptToken(token, key string, ttl time.Duration) ([]byte, error) {
	if key != "" {
		fernet, err := crypto.NewFernet(key)
		if err != nil {
			return nil, err
		}
		return fernet.Decrypt(token, ttl)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cipher, err := cfg.Cipher()
	if err != nil {
		return nil, err
	}

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, crypto.ErrInvalidToken
	}
	return cipher.Decrypt(raw, ttl)
}
