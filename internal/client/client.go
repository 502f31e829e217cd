// Package client is the gRPC client used by the CLI and by upstream
// decision systems submitting PDOs.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/ppiankov/occkernel/api/proto/occkernel/v1"
	"github.com/ppiankov/occkernel/internal/audit"
	"github.com/ppiankov/occkernel/internal/model"
	"github.com/ppiankov/occkernel/internal/queue"
)

const rpcTimeout = 5 * time.Second

// Client connects to an occkernel gRPC server.
type Client struct {
	conn   *grpc.ClientConn
	client pb.OcckernelServiceClient
}

// New creates a gRPC client connected to the given address.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kernel: %w", err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewOcckernelServiceClient(conn),
	}, nil
}

// CreatePdo submits a decision for human review.
func (c *Client) CreatePdo(spec model.Spec) (*model.PDO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	req := &pb.CreatePdoRequest{
		TierRequired:          int32(spec.TierRequired),
		OriginatingDecisionId: spec.OriginatingDecisionID,
		OriginatingActorId:    spec.OriginatingActorID,
		ValueAtRisk:           spec.ValueAtRisk,
		Payload:               spec.Payload,
	}
	if spec.TTL > 0 {
		req.Ttl = spec.TTL.String()
	}

	resp, err := c.client.CreatePdo(ctx, req)
	if err != nil {
		return nil, err
	}
	return protoToPdo(resp.Pdo), nil
}

// Claim takes review ownership of a queued PDO.
func (c *Client) Claim(pdoID, operatorID, credential string) (*model.PDO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.Claim(ctx, &pb.ClaimRequest{
		PdoId:      pdoID,
		OperatorId: operatorID,
		Credential: credential,
	})
	if err != nil {
		return nil, err
	}
	return protoToPdo(resp.Pdo), nil
}

// CommitResult is the client-side view of a commit outcome.
type CommitResult struct {
	Allowed       bool
	DenialCode    string
	DenialReason  string
	PDO           *model.PDO
	EntrySequence uint64
	EntryHash     string
}

// Commit submits an operator decision against a claimed PDO.
func (c *Client) Commit(decision model.OverrideDecision, credential string) (CommitResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.Commit(ctx, &pb.CommitRequest{
		PdoId:         decision.PdoID,
		OperatorId:    decision.OperatorID,
		Credential:    credential,
		TierUsed:      int32(decision.TierUsed),
		Outcome:       string(decision.Outcome),
		Justification: decision.Justification,
		IncidentId:    decision.IncidentID,
	})
	if err != nil {
		return CommitResult{}, err
	}

	out := CommitResult{
		Allowed:       resp.Allowed,
		DenialCode:    resp.DenialCode,
		DenialReason:  resp.DenialReason,
		EntrySequence: resp.EntrySequence,
		EntryHash:     resp.EntryHash,
	}
	if resp.Pdo != nil {
		out.PDO = protoToPdo(resp.Pdo)
	}
	return out, nil
}

// Withdraw cancels a queued PDO on behalf of its originator.
func (c *Client) Withdraw(pdoID, actorID string) (*model.PDO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.Withdraw(ctx, &pb.WithdrawRequest{PdoId: pdoID, ActorId: actorID})
	if err != nil {
		return nil, err
	}
	return protoToPdo(resp.Pdo), nil
}

// Execute releases an approved or overridden PDO downstream.
func (c *Client) Execute(pdoID string) (*model.PDO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.Execute(ctx, &pb.ExecuteRequest{PdoId: pdoID})
	if err != nil {
		return nil, err
	}
	return protoToPdo(resp.Pdo), nil
}

// GetPdo fetches the live record for one PDO.
func (c *Client) GetPdo(pdoID string) (*model.PDO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.GetPdo(ctx, &pb.GetPdoRequest{PdoId: pdoID})
	if err != nil {
		return nil, err
	}
	return protoToPdo(resp.Pdo), nil
}

// ListQueue returns queued PDOs in claim-priority order.
func (c *Client) ListQueue() ([]queue.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.ListQueue(ctx, &pb.ListQueueRequest{})
	if err != nil {
		return nil, err
	}

	items := make([]queue.Item, len(resp.Items))
	for i, it := range resp.Items {
		items[i] = queue.Item{
			PdoID:    it.PdoId,
			Tier:     int(it.Tier),
			Sequence: it.Sequence,
		}
	}
	return items, nil
}

// ExportAudit fetches a verified chain slice as export JSON.
func (c *Client) ExportAudit(from, to uint64) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.ExportAudit(ctx, &pb.ExportAuditRequest{From: from, To: to})
	if err != nil {
		return nil, err
	}
	return resp.ExportJson, nil
}

// KillSwitch engages or disengages the kernel kill switch.
func (c *Client) KillSwitch(operatorID, credential string, engage bool, reason string) error {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	_, err := c.client.KillSwitch(ctx, &pb.KillSwitchRequest{
		OperatorId: operatorID,
		Credential: credential,
		Engage:     engage,
		Reason:     reason,
	})
	return err
}

// Status reports kernel health and chain head.
type Status struct {
	Degraded          bool
	KillSwitchEngaged bool
	QueueDepth        int
	ChainHeadSequence uint64
	ChainHeadHash     string
	ConfigHash        string
}

// Status fetches the kernel status.
func (c *Client) Status() (Status, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	resp, err := c.client.Status(ctx, &pb.StatusRequest{})
	if err != nil {
		return Status{}, err
	}
	return Status{
		Degraded:          resp.Degraded,
		KillSwitchEngaged: resp.KillSwitchEngaged,
		QueueDepth:        int(resp.QueueDepth),
		ChainHeadSequence: resp.ChainHeadSequence,
		ChainHeadHash:     resp.ChainHeadHash,
		ConfigHash:        resp.ConfigHash,
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func protoToPdo(p *pb.Pdo) *model.PDO {
	if p == nil {
		return nil
	}
	createdAt, _ := time.Parse(audit.TimestampFormat, p.CreatedAt)
	out := &model.PDO{
		ID:                    p.PdoId,
		TierRequired:          int(p.TierRequired),
		State:                 model.State(p.State),
		OriginatingDecisionID: p.OriginatingDecisionId,
		OriginatingActorID:    p.OriginatingActorId,
		ValueAtRisk:           p.ValueAtRisk,
		Payload:               p.Payload,
		EnqueuedSequence:      p.EnqueuedSequence,
		ClaimedBy:             p.ClaimedBy,
		Outcome:               model.Outcome(p.Outcome),
		CreatedAt:             createdAt,
	}
	if p.TtlDeadline != "" {
		out.TTLDeadline, _ = time.Parse(audit.TimestampFormat, p.TtlDeadline)
	}
	return out
}
