package cli

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var keygenOut string

func init() {
	rootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().StringVarP(&keygenOut, "out", "o", "", "Private key output file (required)")
	keygenCmd.MarkFlagRequired("out")
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an Ed25519 audit signing key",
	Long:  "Writes a hex-encoded private key for audit entry signing and prints\nthe public key to distribute to verifiers.",
	RunE:  runKeygen,
}

func runKeygen(cmd *cobra.Command, args []string) error {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate signing key: %w", err)
	}

	if err := os.WriteFile(keygenOut, []byte(hex.EncodeToString(priv)+"\n"), 0600); err != nil {
		return fmt.Errorf("write signing key: %w", err)
	}

	fmt.Printf("private key written to %s\n", keygenOut)
	fmt.Printf("public key: %s\n", hex.EncodeToString(pub))
	return nil
}
