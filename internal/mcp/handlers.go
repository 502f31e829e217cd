package mcp

import (
	"context"
	"encoding/json"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/occkernel/internal/audit"
	"github.com/ppiankov/occkernel/internal/model"
)

// --- Input/Output types ---

// CreatePdoInput defines parameters for the occ_create_pdo tool.
type CreatePdoInput struct {
	TierRequired int             `json:"tier_required" jsonschema:"minimum authority tier an operator needs to decide this"`
	DecisionID   string          `json:"decision_id" jsonschema:"id of the originating decision in the submitting system"`
	ValueAtRisk  int64           `json:"value_at_risk" jsonschema:"value at risk in minor currency units"`
	Payload      json.RawMessage `json:"payload,omitempty" jsonschema:"opaque decision payload shown to the reviewer"`
	TTL          string          `json:"ttl,omitempty" jsonschema:"review deadline as a duration (e.g. 2h), omit for the kernel default"`
}

// CreatePdoOutput returns the admitted PDO.
type CreatePdoOutput struct {
	PdoID       string `json:"pdo_id"`
	State       string `json:"state"`
	TTLDeadline string `json:"ttl_deadline,omitempty"`
}

// PdoStatusInput defines parameters for the occ_pdo_status tool.
type PdoStatusInput struct {
	PdoID string `json:"pdo_id" jsonschema:"id returned by occ_create_pdo"`
}

// PdoStatusOutput describes the current review state of a PDO.
type PdoStatusOutput struct {
	PdoID     string `json:"pdo_id"`
	State     string `json:"state"`
	ClaimedBy string `json:"claimed_by,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Terminal  bool   `json:"terminal"`
}

// WithdrawInput defines parameters for the occ_withdraw tool.
type WithdrawInput struct {
	PdoID string `json:"pdo_id" jsonschema:"id of the PDO to withdraw"`
}

// WithdrawOutput confirms the withdrawal.
type WithdrawOutput struct {
	PdoID string `json:"pdo_id"`
	State string `json:"state"`
}

// QueueInput is empty, no parameters needed.
type QueueInput struct{}

// QueueItem describes one PDO awaiting review.
type QueueItem struct {
	PdoID    string `json:"pdo_id"`
	Tier     int    `json:"tier"`
	Sequence uint64 `json:"sequence"`
}

// QueueOutput lists PDOs awaiting review.
type QueueOutput struct {
	Items []QueueItem `json:"items"`
}

// --- Handlers ---

func (s *Server) handleCreatePdo(ctx context.Context, req *mcpsdk.CallToolRequest, input CreatePdoInput) (*mcpsdk.CallToolResult, CreatePdoOutput, error) {
	var ttl time.Duration
	if input.TTL != "" {
		var err error
		ttl, err = time.ParseDuration(input.TTL)
		if err != nil {
			return nil, CreatePdoOutput{}, err
		}
	}

	p, err := s.kernel.CreatePdo(model.Spec{
		TierRequired:          input.TierRequired,
		OriginatingDecisionID: input.DecisionID,
		OriginatingActorID:    s.actorID,
		ValueAtRisk:           input.ValueAtRisk,
		Payload:               input.Payload,
		TTL:                   ttl,
	})
	if err != nil {
		return nil, CreatePdoOutput{}, err
	}

	out := CreatePdoOutput{
		PdoID: p.ID,
		State: string(p.State),
	}
	if !p.TTLDeadline.IsZero() {
		out.TTLDeadline = p.TTLDeadline.Format(audit.TimestampFormat)
	}
	return nil, out, nil
}

func (s *Server) handlePdoStatus(ctx context.Context, req *mcpsdk.CallToolRequest, input PdoStatusInput) (*mcpsdk.CallToolResult, PdoStatusOutput, error) {
	p, err := s.kernel.GetPdo(input.PdoID)
	if err != nil {
		return nil, PdoStatusOutput{}, err
	}

	return nil, PdoStatusOutput{
		PdoID:     p.ID,
		State:     string(p.State),
		ClaimedBy: p.ClaimedBy,
		Outcome:   string(p.Outcome),
		Terminal:  p.State.Terminal(),
	}, nil
}

func (s *Server) handleWithdraw(ctx context.Context, req *mcpsdk.CallToolRequest, input WithdrawInput) (*mcpsdk.CallToolResult, WithdrawOutput, error) {
	p, err := s.kernel.Withdraw(input.PdoID, s.actorID)
	if err != nil {
		return nil, WithdrawOutput{}, err
	}
	return nil, WithdrawOutput{PdoID: p.ID, State: string(p.State)}, nil
}

func (s *Server) handleQueue(ctx context.Context, req *mcpsdk.CallToolRequest, input QueueInput) (*mcpsdk.CallToolResult, QueueOutput, error) {
	items, err := s.kernel.ListQueue()
	if err != nil {
		return nil, QueueOutput{}, err
	}

	out := QueueOutput{Items: make([]QueueItem, len(items))}
	for i, it := range items {
		out.Items[i] = QueueItem{PdoID: it.PdoID, Tier: it.Tier, Sequence: it.Sequence}
	}
	return nil, out, nil
}
