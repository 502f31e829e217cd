package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/occkernel/internal/mcp"
)

var mcpActorID string

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpActorID, "actor", "", "Actor id recorded on every PDO submitted over this bridge (required)")
	mcpCmd.MarkFlagRequired("actor")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP submission bridge on stdio",
	Long:  "Exposes occ_create_pdo, occ_pdo_status, occ_withdraw, and occ_queue\nas MCP tools for AI agents. Agents can only submit and observe;\nclaiming and deciding stay with human operators.",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	srv, err := mcp.New(mcp.Config{
		KernelAddr: kernelAddr,
		ActorID:    mcpActorID,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP bridge: %w", err)
	}
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return srv.Run(ctx)
}
