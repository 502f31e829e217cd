package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/occkernel/internal/client"
)

func init() {
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(executeCmd)
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List PDOs awaiting review in claim-priority order",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.New(kernelAddr)
		if err != nil {
			return err
		}
		defer c.Close()

		items, err := c.ListQueue()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("queue empty")
			return nil
		}
		for _, it := range items {
			fmt.Printf("%s  tier=%d  seq=%d\n", it.PdoID, it.Tier, it.Sequence)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show kernel health, queue depth, and chain head",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.New(kernelAddr)
		if err != nil {
			return err
		}
		defer c.Close()

		st, err := c.Status()
		if err != nil {
			return err
		}
		out, _ := json.MarshalIndent(st, "", "  ")
		fmt.Println(string(out))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <pdo-id>",
	Short: "Show the live record for one PDO",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.New(kernelAddr)
		if err != nil {
			return err
		}
		defer c.Close()

		p, err := c.GetPdo(args[0])
		if err != nil {
			return err
		}
		out, _ := json.MarshalIndent(p, "", "  ")
		fmt.Println(string(out))
		return nil
	},
}

var executeCmd = &cobra.Command{
	Use:   "execute <pdo-id>",
	Short: "Release an approved or overridden PDO downstream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.New(kernelAddr)
		if err != nil {
			return err
		}
		defer c.Close()

		p, err := c.Execute(args[0])
		if err != nil {
			return err
		}
		out, _ := json.MarshalIndent(p, "", "  ")
		fmt.Println(string(out))
		return nil
	},
}
