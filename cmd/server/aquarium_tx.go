package main

import (
	"context"
	"database/sql"
	"time"

	dErrors "aquaria/pkg/domain-errors"
	txcontext "aquaria/pkg/platform/tx"
)

const defaultAquariumTxTimeout = 5 * time.Second

// aquariumPostgresTx runs aggregate mutations in one database transaction.
// Stores and the audit store pick the *sql.Tx up from the context.
type aquariumPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newAquariumPostgresTx(db *sql.DB) *aquariumPostgresTx {
	return &aquariumPostgresTx{db: db}
}

func (t *aquariumPostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	if _, ok := txcontext.From(ctx); ok {
		return fn(ctx)
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultAquariumTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback after commit is no-op; error already captured
	}()

	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to commit transaction")
	}
	return nil
}
