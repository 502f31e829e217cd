package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/occkernel/internal/server"
	"github.com/ppiankov/occkernel/internal/sweeper"
)

var (
	servePort   int
	serveConfig string
	serveRoster string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "gRPC listen port (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to kernel config YAML")
	serveCmd.Flags().StringVar(&serveRoster, "roster", "", "Path to operator roster YAML")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the kernel gRPC server",
	Long:  "Runs the operator control kernel as a gRPC server.\nStarts the TTL sweeper, the periodic audit self-check, and hot-reload of the kernel config file.",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.Config{
		Port:       servePort,
		ConfigPath: serveConfig,
		RosterPath: serveRoster,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	defer srv.Close()

	reloader, err := server.NewReloader(srv, []string{serveConfig})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: hot-reload disabled: %v\n", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if reloader != nil {
		go reloader.Run(ctx)
	}

	k := srv.Kernel()
	sw := sweeper.New(k, k.Config().SweepInterval)
	go sw.Run(ctx)
	go k.RunSelfCheck(ctx, k.Config().SelfCheckInterval)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down kernel...")
		cancel()
		srv.GracefulStop()
	}()

	fmt.Fprintf(os.Stderr, "occkernel listening, config hash %s\n", k.ConfigHash())
	return srv.Serve()
}
