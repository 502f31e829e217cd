// Package identity defines the kernel's view of the external identity/tier
// provider. The kernel never re-derives an operator's tier: it trusts the
// attestation handed to it and records it with every committed entry.
package identity

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/occkernel/internal/model"
)

// Attestor resolves operator credentials to an attested identity and tier.
// Production deployments back this with the MFA/identity provider; the
// kernel only consumes the result.
type Attestor interface {
	Attest(ctx context.Context, operatorID, credential string) (model.Attestation, error)
}

// Roster is a static Attestor backed by an operator→tier map, for
// development and tests.
type Roster struct {
	operators map[string]int
}

// NewRoster creates a Roster from an operator→tier map.
func NewRoster(operators map[string]int) *Roster {
	if operators == nil {
		operators = make(map[string]int)
	}
	return &Roster{operators: operators}
}

// LoadRoster reads a roster from a YAML file mapping operator id to tier.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("identity: read roster: %w", err)
	}
	var operators map[string]int
	if err := yaml.Unmarshal(data, &operators); err != nil {
		return nil, fmt.Errorf("identity: parse roster: %w", err)
	}
	return NewRoster(operators), nil
}

// Attest returns the attestation for a known operator. The credential is
// not inspected here: a static roster has nothing to check it against.
func (r *Roster) Attest(ctx context.Context, operatorID, credential string) (model.Attestation, error) {
	if err := ctx.Err(); err != nil {
		return model.Attestation{}, err
	}
	id := strings.TrimSpace(operatorID)
	tier, ok := r.operators[id]
	if !ok {
		return model.Attestation{}, fmt.Errorf("identity: unknown operator %q", id)
	}
	return model.Attestation{OperatorID: id, Tier: tier}, nil
}
