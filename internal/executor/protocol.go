package executor

import (
	"context"
	"time"

	"github.com/ppiankov/occkernel/internal/audit"
	"github.com/ppiankov/occkernel/internal/config"
	"github.com/ppiankov/occkernel/internal/model"
	"github.com/ppiankov/occkernel/internal/store"
)

// AuditedTransition is the commit protocol shared by every PDO state change:
// validate the transition, durably append its audit entry, and only then let
// the new state become visible. It runs under the store's write lock, so no
// reader observes the transition before its entry is chained. If the audit
// append fails after bounded retries, the transition is aborted entirely and
// the PDO is left exactly as it was.
func AuditedTransition(
	ctx context.Context,
	st store.Store,
	log *audit.Log,
	retry config.RetryConfig,
	pdoID string,
	entry audit.Entry,
	mutate func(p *model.PDO) error,
) (*model.PDO, audit.Entry, error) {
	var committed audit.Entry

	p, err := st.Update(pdoID, func(p *model.PDO) error {
		if err := mutate(p); err != nil {
			return err
		}
		entry.PayloadDigest = audit.DigestPayload(p.Payload)

		e, err := AppendWithRetry(ctx, log, retry, entry)
		if err != nil {
			return &model.AuditWriteError{Err: err}
		}
		committed = e
		return nil
	})
	if err != nil {
		return nil, audit.Entry{}, err
	}
	return p, committed, nil
}

// AppendWithRetry appends an entry with bounded retries and backoff.
// Audit persistence failure surfaces to the caller: fail-closed, never
// fire-and-forget.
func AppendWithRetry(ctx context.Context, log *audit.Log, retry config.RetryConfig, entry audit.Entry) (audit.Entry, error) {
	backoff := retry.Backoff
	var lastErr error

	for attempt := 0; attempt < retry.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return audit.Entry{}, err
		}
		e, err := log.Append(entry)
		if err == nil {
			return e, nil
		}
		lastErr = err

		if attempt < retry.Attempts-1 {
			select {
			case <-ctx.Done():
				return audit.Entry{}, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	return audit.Entry{}, lastErr
}
