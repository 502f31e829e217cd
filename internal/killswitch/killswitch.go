// Package killswitch holds the kernel-wide fail-closed mode. While engaged,
// all new claims and transitions are rejected. Engage and disengage are
// privileged operations and both are chained into the audit log by the
// kernel before the mode change takes effect.
package killswitch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// State is the persisted kill switch record.
type State struct {
	Engaged      bool       `json:"engaged"`
	Actor        string     `json:"actor,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	EngagedAt    *time.Time `json:"engaged_at,omitempty"`
	DisengagedAt *time.Time `json:"disengaged_at,omitempty"`
}

// Switch is a file-backed kill switch. The state survives restarts: a
// kernel that went down engaged comes back engaged.
type Switch struct {
	path string
	mu   sync.Mutex
	st   State
}

// Open loads (or initializes) the kill switch state file.
func Open(path string) (*Switch, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("killswitch: create directory: %w", err)
	}

	s := &Switch{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("killswitch: read state: %w", err)
	}
	if err := json.Unmarshal(data, &s.st); err != nil {
		return nil, fmt.Errorf("killswitch: parse state: %w", err)
	}
	return s, nil
}

// Engaged reports whether the kill switch is currently engaged.
func (s *Switch) Engaged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Engaged
}

// Current returns a copy of the persisted state.
func (s *Switch) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

// Engage sets the fail-closed mode. A mandatory reason is recorded.
func (s *Switch) Engage(actor, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("killswitch: engage reason is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.Engaged {
		return fmt.Errorf("killswitch: already engaged by %s", s.st.Actor)
	}

	now := time.Now().UTC()
	s.st = State{Engaged: true, Actor: actor, Reason: reason, EngagedAt: &now}
	return s.writeAtomic()
}

// Disengage clears the fail-closed mode.
func (s *Switch) Disengage(actor, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("killswitch: disengage reason is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.st.Engaged {
		return fmt.Errorf("killswitch: not engaged")
	}

	now := time.Now().UTC()
	s.st = State{Engaged: false, Actor: actor, Reason: reason, DisengagedAt: &now}
	return s.writeAtomic()
}

func (s *Switch) writeAtomic() error {
	data, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
