package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/config"
)

// keyDeriveCmd represents the key derive command
var keyDeriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive the encryption key from the configured secret",
	Long: `
Derive the encryption key from the configured secret

The encryption key is never used directly. It is derived from the configured
key material (CRYPTOGRAPHY_KEY, falling back to CRYPTOGRAPHY_SECRET) with
PBKDF2, matching the derivation Django's cryptography module performs.

Use this command to inspect the derived key, for example to configure another
system that needs to decrypt the same data.
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}

		key, err := cfg.DerivedKey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to derive key: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(key))
	},
}

func init() {
	keyCmd.AddCommand(keyDeriveCmd)
}
