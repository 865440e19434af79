package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/config"
	"github.com/doodlesbykumbi/cryptography-in-go/pkg/crypto"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [data]",
	Short: "Encrypt data into a Fernet token",
	Long: `Encrypt data into a Fernet token.

The plaintext is read from the argument, or from stdin when no argument is
given. By default the token is produced with the encryption key derived from
the configured secret. Pass --key to use a standalone Fernet key instead,
for example one from 'cryptoctl key generate'.

Example:
  cryptoctl encrypt "attack at dawn"
  echo -n "attack at dawn" | cryptoctl encrypt
  cryptoctl encrypt --key "$FERNET_KEY" "attack at dawn"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key, _ := cmd.Flags().GetString("key")

		data, err := readInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
			os.Exit(1)
		}

		token, err := encryptData(data, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encrypt: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().StringP("key", "k", "", "Standalone Fernet key (default: derive from the configured secret)")
}

func encryptData(data []byte, key string) (string, error) {
	if key != "" {
		fernet, err := crypto.NewFernet(key)
		if err != nil {
			return "", err
		}
		return fernet.Encrypt(data)
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	cipher, err := cfg.Cipher()
	if err != nil {
		return "", err
	}

	token, err := cipher.Encrypt(data)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(token), nil
}

// readInput returns the first argument, or all of stdin when no argument
// is given.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	return io.ReadAll(os.Stdin)
}

// readInputString is readInput for line-oriented values. Trailing newlines
// from shell pipelines are stripped.
func readInputString(args []string) (string, error) {
	data, err := readInput(args)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
