package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "aquaria/pkg/domain-errors"
)

func TestInMemoryStoreTx(t *testing.T) {
	tx := newInMemoryStoreTx()

	t.Run("nested runs share the outer lock", func(t *testing.T) {
		calls := 0
		err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
			calls++
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return tx.RunInTx(ctx, func(context.Context) error {
				calls++
				return nil
			})
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("cancelled context never runs fn", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := tx.RunInTx(ctx, func(context.Context) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
	})

	t.Run("fn errors pass through", func(t *testing.T) {
		want := dErrors.New(dErrors.CodeConflict, "already a member")
		err := tx.RunInTx(context.Background(), func(context.Context) error { return want })
		assert.Equal(t, want, err)
	})
}
