package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/occkernel/internal/client"
)

var withdrawActor string

func init() {
	rootCmd.AddCommand(withdrawCmd)
	withdrawCmd.Flags().StringVar(&withdrawActor, "actor", "", "Originating actor id (required)")
	withdrawCmd.MarkFlagRequired("actor")
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <pdo-id>",
	Short: "Withdraw a queued PDO before anyone claims it",
	Args:  cobra.ExactArgs(1),
	RunE:  runWithdraw,
}

func runWithdraw(cmd *cobra.Command, args []string) error {
	c, err := client.New(kernelAddr)
	if err != nil {
		return err
	}
	defer c.Close()

	p, err := c.Withdraw(args[0], withdrawActor)
	if err != nil {
		return err
	}

	out, _ := json.MarshalIndent(p, "", "  ")
	fmt.Println(string(out))
	return nil
}
