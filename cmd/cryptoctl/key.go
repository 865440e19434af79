package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// keyCmd represents the key command
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage key material",
	Long:  `Manage Fernet keys and derived key material.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'key' requires a subcommand (generate, derive)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
}
