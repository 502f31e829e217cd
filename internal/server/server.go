// Package server exposes the kernel over gRPC. The server owns process
// wiring: audit storage, signing, kill switch state, the kernel itself, and
// the identity roster the RPC layer attests against.
package server

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	pb "github.com/ppiankov/occkernel/api/proto/occkernel/v1"
	"github.com/ppiankov/occkernel/internal/audit"
	"github.com/ppiankov/occkernel/internal/config"
	"github.com/ppiankov/occkernel/internal/identity"
	"github.com/ppiankov/occkernel/internal/kernel"
	"github.com/ppiankov/occkernel/internal/killswitch"
	"github.com/ppiankov/occkernel/internal/model"
)

// Config holds gRPC server configuration.
type Config struct {
	Port       int
	ConfigPath string
	RosterPath string
}

// Server implements the OcckernelService gRPC server.
type Server struct {
	pb.UnimplementedOcckernelServiceServer

	kernel   *kernel.Kernel
	attestor identity.Attestor
	auditLog *audit.Log
	cfg      Config

	grpcServer *grpc.Server
}

// New loads configuration, opens audit storage and the kill switch, and
// assembles the kernel behind a gRPC server.
func New(cfg Config) (*Server, error) {
	kcfg, configHash, err := config.LoadWithHash(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Port != 0 {
		kcfg.Port = cfg.Port
	}
	if cfg.RosterPath != "" {
		kcfg.RosterPath = cfg.RosterPath
	}
	if err := kcfg.Validate(); err != nil {
		return nil, err
	}

	storage, err := audit.OpenSQLite(kcfg.AuditDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit storage: %w", err)
	}

	var signer *audit.Signer
	if kcfg.SigningKeyPath != "" {
		signer, err = audit.LoadSigner(kcfg.SigningKeyID, kcfg.SigningKeyPath)
		if err != nil {
			storage.Close()
			return nil, fmt.Errorf("failed to load signing key: %w", err)
		}
	}

	log, err := audit.Open(storage, signer)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	kill, err := killswitch.Open(kcfg.KillSwitchPath)
	if err != nil {
		log.Close()
		return nil, err
	}

	var attestor identity.Attestor
	if kcfg.RosterPath != "" {
		attestor, err = identity.LoadRoster(kcfg.RosterPath)
		if err != nil {
			log.Close()
			return nil, err
		}
	} else {
		attestor = identity.NewRoster(nil)
	}

	s := &Server{
		kernel:     kernel.New(log, kill, kcfg, configHash),
		attestor:   attestor,
		auditLog:   log,
		cfg:        cfg,
		grpcServer: grpc.NewServer(),
	}

	pb.RegisterOcckernelServiceServer(s.grpcServer, s)
	return s, nil
}

// Kernel returns the kernel behind this server, for the sweeper and tests.
func (s *Server) Kernel() *kernel.Kernel {
	return s.kernel
}

// Serve starts the gRPC server on the configured port. Blocks until stopped.
func (s *Server) Serve() error {
	port := s.cfg.Port
	if port == 0 {
		port = config.DefaultConfig().Port
	}
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}
	return s.grpcServer.Serve(lis)
}

// ServeOn starts the gRPC server on the given listener. For testing.
func (s *Server) ServeOn(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// GracefulStop gracefully shuts down the gRPC server.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

// Close releases the audit log and its storage.
func (s *Server) Close() error {
	return s.auditLog.Close()
}

// ReloadConfig re-reads the kernel configuration file and swaps it in.
// Called by the hot-reloader on file change.
func (s *Server) ReloadConfig() error {
	kcfg, configHash, err := config.LoadWithHash(s.cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to reload kernel config: %w", err)
	}
	if err := kcfg.Validate(); err != nil {
		return err
	}
	s.kernel.SetConfig(kcfg, configHash)
	return nil
}

// CreatePdo implements the CreatePdo RPC.
func (s *Server) CreatePdo(ctx context.Context, req *pb.CreatePdoRequest) (*pb.CreatePdoResponse, error) {
	var ttl time.Duration
	if req.Ttl != "" {
		var err error
		ttl, err = time.ParseDuration(req.Ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid ttl %q: %w", req.Ttl, err)
		}
	}

	p, err := s.kernel.CreatePdo(ctx, model.Spec{
		TierRequired:          int(req.TierRequired),
		OriginatingDecisionID: req.OriginatingDecisionId,
		OriginatingActorID:    req.OriginatingActorId,
		ValueAtRisk:           req.ValueAtRisk,
		Payload:               req.Payload,
		TTL:                   ttl,
	})
	if err != nil {
		return nil, err
	}
	return &pb.CreatePdoResponse{Pdo: pdoToProto(p)}, nil
}

// Claim implements the Claim RPC.
func (s *Server) Claim(ctx context.Context, req *pb.ClaimRequest) (*pb.ClaimResponse, error) {
	att, err := s.attestor.Attest(ctx, req.OperatorId, req.Credential)
	if err != nil {
		return nil, err
	}

	p, err := s.kernel.Claim(ctx, req.PdoId, att)
	if err != nil {
		return nil, err
	}
	return &pb.ClaimResponse{Pdo: pdoToProto(p)}, nil
}

// Commit implements the Commit RPC. A policy denial is a successful
// response with allowed=false, not an RPC error.
func (s *Server) Commit(ctx context.Context, req *pb.CommitRequest) (*pb.CommitResponse, error) {
	att, err := s.attestor.Attest(ctx, req.OperatorId, req.Credential)
	if err != nil {
		return nil, err
	}

	res, err := s.kernel.Commit(ctx, model.OverrideDecision{
		PdoID:         req.PdoId,
		OperatorID:    att.OperatorID,
		TierUsed:      int(req.TierUsed),
		Justification: req.Justification,
		IncidentID:    req.IncidentId,
		Outcome:       model.Outcome(req.Outcome),
	}, att)
	if err != nil {
		return nil, err
	}

	resp := &pb.CommitResponse{
		Allowed:       res.Allowed,
		EntrySequence: res.Entry.Sequence,
		EntryHash:     res.Entry.EntryHash,
	}
	if res.PDO != nil {
		resp.Pdo = pdoToProto(res.PDO)
	}
	if res.Denial != nil {
		resp.DenialCode = res.Denial.Code
		resp.DenialReason = res.Denial.Reason
	}
	return resp, nil
}

// Withdraw implements the Withdraw RPC.
func (s *Server) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {
	p, err := s.kernel.Withdraw(ctx, req.PdoId, req.ActorId)
	if err != nil {
		return nil, err
	}
	return &pb.WithdrawResponse{Pdo: pdoToProto(p)}, nil
}

// Execute implements the Execute RPC.
func (s *Server) Execute(ctx context.Context, req *pb.ExecuteRequest) (*pb.ExecuteResponse, error) {
	p, err := s.kernel.Execute(ctx, req.PdoId)
	if err != nil {
		return nil, err
	}
	return &pb.ExecuteResponse{Pdo: pdoToProto(p)}, nil
}

// GetPdo implements the GetPdo RPC.
func (s *Server) GetPdo(ctx context.Context, req *pb.GetPdoRequest) (*pb.GetPdoResponse, error) {
	p, err := s.kernel.GetPdo(req.PdoId)
	if err != nil {
		return nil, err
	}
	return &pb.GetPdoResponse{Pdo: pdoToProto(p)}, nil
}

// ListQueue implements the ListQueue RPC.
func (s *Server) ListQueue(ctx context.Context, req *pb.ListQueueRequest) (*pb.ListQueueResponse, error) {
	items := s.kernel.ListQueue()
	out := make([]*pb.QueueItem, len(items))
	for i, it := range items {
		out[i] = &pb.QueueItem{
			PdoId:    it.PdoID,
			Tier:     int32(it.Tier),
			Sequence: it.Sequence,
		}
	}
	return &pb.ListQueueResponse{Items: out}, nil
}

// ExportAudit implements the ExportAudit RPC.
func (s *Server) ExportAudit(ctx context.Context, req *pb.ExportAuditRequest) (*pb.ExportAuditResponse, error) {
	from := req.From
	if from == 0 {
		from = 1
	}
	export, err := audit.BuildExport(s.auditLog.Storage(), from, req.To)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		return nil, err
	}
	return &pb.ExportAuditResponse{
		ExportJson: buf.Bytes(),
		AnchorHash: export.AnchorHash,
		TailHash:   export.TailHash,
		Entries:    uint64(len(export.Entries)),
	}, nil
}

// KillSwitch implements the KillSwitch RPC.
func (s *Server) KillSwitch(ctx context.Context, req *pb.KillSwitchRequest) (*pb.KillSwitchResponse, error) {
	att, err := s.attestor.Attest(ctx, req.OperatorId, req.Credential)
	if err != nil {
		return nil, err
	}

	if req.Engage {
		err = s.kernel.EngageKillSwitch(ctx, att, req.Reason)
	} else {
		err = s.kernel.DisengageKillSwitch(ctx, att, req.Reason)
	}
	if err != nil {
		return nil, err
	}

	st := s.kernel.KillSwitch()
	return &pb.KillSwitchResponse{
		Engaged: st.Engaged,
		Actor:   st.Actor,
		Reason:  st.Reason,
	}, nil
}

// Status implements the Status RPC.
func (s *Server) Status(ctx context.Context, req *pb.StatusRequest) (*pb.StatusResponse, error) {
	seq, hash := s.auditLog.Head()
	return &pb.StatusResponse{
		Degraded:          s.kernel.Degraded(),
		KillSwitchEngaged: s.kernel.KillSwitch().Engaged,
		QueueDepth:        int32(len(s.kernel.ListQueue())),
		ChainHeadSequence: seq,
		ChainHeadHash:     hash,
		ConfigHash:        s.kernel.ConfigHash(),
	}, nil
}

func pdoToProto(p *model.PDO) *pb.Pdo {
	out := &pb.Pdo{
		PdoId:                 p.ID,
		TierRequired:          int32(p.TierRequired),
		State:                 string(p.State),
		OriginatingDecisionId: p.OriginatingDecisionID,
		OriginatingActorId:    p.OriginatingActorID,
		ValueAtRisk:           p.ValueAtRisk,
		Payload:               p.Payload,
		EnqueuedSequence:      p.EnqueuedSequence,
		ClaimedBy:             p.ClaimedBy,
		Outcome:               string(p.Outcome),
		CreatedAt:             p.CreatedAt.Format(audit.TimestampFormat),
	}
	if !p.TTLDeadline.IsZero() {
		out.TtlDeadline = p.TTLDeadline.Format(audit.TimestampFormat)
	}
	return out
}
