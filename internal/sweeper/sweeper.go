// Package sweeper runs the periodic TTL scan that expires PDOs nobody
// reviewed in time. Aging decisions resolve to Expired, never to silent
// approval.
package sweeper

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/occkernel/internal/kernel"
)

// Sweeper periodically expires overdue PDOs.
type Sweeper struct {
	kernel   *kernel.Kernel
	interval time.Duration
	now      func() time.Time
}

// New creates a sweeper over the kernel with the given scan interval.
func New(k *kernel.Kernel, interval time.Duration) *Sweeper {
	return &Sweeper{kernel: k, interval: interval, now: time.Now}
}

// Run scans until ctx is canceled. Individual sweep errors are reported and
// the loop continues; only cancellation stops it.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "sweeper: %v\n", err)
			}
		}
	}
}

// Sweep runs a single expiry pass and returns how many PDOs expired.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	return s.kernel.ExpireDue(ctx, s.now().UTC())
}
