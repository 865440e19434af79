package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/crypto"
)

// keyGenerateCmd represents the key generate command
var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Fernet key",
	Long: `
Generate a Fernet key

Use this command to generate a new url-safe Base64-encoded 256 bit Fernet key.
The first half of the key is used for signing and the second half for
encryption. Keep the key secret: anyone holding it can decrypt and forge
tokens.

Example:

$ export CRYPTOGRAPHY_SECRET="$(cryptoctl key generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := crypto.GenerateKey()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: failed to generate key:", err)
			os.Exit(1)
		}
		fmt.Printf("%s", key)
	},
}

func init() {
	keyCmd.AddCommand(keyGenerateCmd)
}
