package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/occkernel/internal/client"
)

var (
	claimOperator   string
	claimCredential string
)

func init() {
	rootCmd.AddCommand(claimCmd)
	claimCmd.Flags().StringVar(&claimOperator, "operator", "", "Operator id (required)")
	claimCmd.Flags().StringVar(&claimCredential, "credential", "", "Operator credential for attestation")
	claimCmd.MarkFlagRequired("operator")
}

var claimCmd = &cobra.Command{
	Use:   "claim <pdo-id>",
	Short: "Take exclusive review ownership of a queued PDO",
	Args:  cobra.ExactArgs(1),
	RunE:  runClaim,
}

func runClaim(cmd *cobra.Command, args []string) error {
	c, err := client.New(kernelAddr)
	if err != nil {
		return err
	}
	defer c.Close()

	p, err := c.Claim(args[0], claimOperator, claimCredential)
	if err != nil {
		return err
	}

	out, _ := json.MarshalIndent(p, "", "  ")
	fmt.Println(string(out))
	return nil
}
