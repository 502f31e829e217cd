package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "occkernel",
	Short: "Operator control kernel for AI-originated decisions",
	Long:  "Holds consequential AI-originated decisions for mandatory human review.\nEvery approval, rejection, override, and denial is committed to a\nhash-chained audit log before it takes effect.",
}

var kernelAddr string

func init() {
	rootCmd.PersistentFlags().StringVar(&kernelAddr, "addr", "localhost:50061", "Kernel gRPC address")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
