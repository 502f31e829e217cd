// Package mcp exposes the kernel's submission surface to AI agents over the
// Model Context Protocol. Agents can submit decisions for human review,
// poll their status, and withdraw them; they can never claim, decide, or
// execute.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/occkernel/internal/client"
)

// Config holds MCP bridge configuration.
type Config struct {
	// KernelAddr is the gRPC address of the running kernel.
	KernelAddr string

	// ActorID identifies the submitting agent in every PDO it originates.
	ActorID string
}

// Server bridges MCP tool calls to the kernel's gRPC surface.
type Server struct {
	mcpServer *mcpsdk.Server
	kernel    *client.Client
	actorID   string
}

// New creates the MCP bridge connected to a running kernel.
func New(cfg Config) (*Server, error) {
	if cfg.ActorID == "" {
		return nil, fmt.Errorf("mcp: actor id is required")
	}

	kc, err := client.New(cfg.KernelAddr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		kernel:  kc,
		actorID: cfg.ActorID,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "occkernel",
			Version: "0.1.0",
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close closes the kernel connection.
func (s *Server) Close() error {
	return s.kernel.Close()
}

// registerTools adds the agent-facing tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "occ_create_pdo",
		Description: "Submit a decision for human review. Returns the PDO id to poll; the decision does not execute until an operator approves it.",
	}, s.handleCreatePdo)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "occ_pdo_status",
		Description: "Check the review status of a submitted PDO.",
	}, s.handlePdoStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "occ_withdraw",
		Description: "Withdraw a submitted PDO that no operator has claimed yet.",
	}, s.handleWithdraw)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "occ_queue",
		Description: "List PDOs currently awaiting review, in claim-priority order.",
	}, s.handleQueue)
}
