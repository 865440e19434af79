package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/crypto"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [signed-value]",
	Short: "Verify a signed value",
	Long: `Verify a signed value produced by 'cryptoctl sign'.

The signed value is read from the argument, or from stdin when no argument is
given. On success the original value is printed. The command exits non-zero
when the signature does not match.

Pass --max-age to reject timestamped signatures older than the given
duration. --max-age implies --timestamp. The salt, separator and timestamp
flags must match the ones used to sign.

Example:
  cryptoctl verify "hello:mP8dtoT..."
  cryptoctl verify --max-age 1h "hello:2cWWhn:bNHva..."`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		salt, _ := cmd.Flags().GetString("salt")
		sep, _ := cmd.Flags().GetString("sep")
		timestamped, _ := cmd.Flags().GetBool("timestamp")
		maxAge, _ := cmd.Flags().GetDuration("max-age")

		signedValue, err := readInputString(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
			os.Exit(1)
		}

		value, err := unsignValue(signedValue, salt, sep, timestamped, maxAge)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to verify: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(value)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().String("salt", "", "Namespace the signature (default: the signer class salt)")
	verifyCmd.Flags().String("sep", ":", "Separator between value and signature")
	verifyCmd.Flags().BoolP("timestamp", "t", false, "The value carries a timestamped signature")
	verifyCmd.Flags().Duration("max-age", 0, "Reject timestamped signatures older than this duration")
}

func unsignValue(signedValue, salt, sep string, timestamped bool, maxAge time.Duration) (string, error) {
	key, opts, err := signerSetup(salt, sep)
	if err != nil {
		return "", err
	}

	if timestamped || maxAge > 0 {
		signer, err := crypto.NewTimestampSigner(key, opts...)
		if err != nil {
			return "", err
		}
		return signer.Unsign(signedValue, maxAge)
	}

	signer, err := crypto.NewSigner(key, opts...)
	if err != nil {
		return "", err
	}
	return signer.Unsign(signedValue)
}
