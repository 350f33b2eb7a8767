package service

import (
	"context"
	"sync"
	"time"

	dErrors "aquaria/pkg/domain-errors"
)

// StoreTx is the boundary every aggregate mutation runs inside. fn receives
// the context the stores must use.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const defaultTxTimeout = 5 * time.Second

type inMemoryTxKey struct{}

// inMemoryStoreTx runs one mutation at a time across all aquariums. Nothing
// is rolled back, so service methods save only after every check passed.
// Nested calls reuse the outer run.
type inMemoryStoreTx struct {
	mu      sync.Mutex
	timeout time.Duration
}

func newInMemoryStoreTx() *inMemoryStoreTx {
	return &inMemoryStoreTx{timeout: defaultTxTimeout}
}

func (t *inMemoryStoreTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(inMemoryTxKey{}) != nil {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return txAborted(err)
	}
	if _, ok := ctx.Deadline(); !ok && t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// The wait for the lock may have used up the deadline.
	if err := ctx.Err(); err != nil {
		return txAborted(err)
	}
	return fn(context.WithValue(ctx, inMemoryTxKey{}, struct{}{}))
}

func txAborted(err error) error {
	return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
}
