package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cryptoctl",
	Short: "Symmetric encryption and signing toolkit",
	Long: `A toolkit for authenticated symmetric encryption and keyed signing.

cryptoctl produces and consumes Fernet tokens and signed values compatible
with Django's cryptography module, and manages a small encrypted vault
backed by PostgreSQL.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
