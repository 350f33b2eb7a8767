package revocation

import (
	"context"
	"log/slog"
	"time"

	"aquaria/pkg/platform/circuit"
)

// List is the contract shared by the revocation list implementations.
type List interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// ResilientTRL fronts a shared list with a circuit breaker. Every revocation
// is also recorded locally, so tokens revoked by this instance stay revoked
// while the shared list is unreachable. With the circuit open, lookups for
// tokens revoked elsewhere are answered from the local list only.
type ResilientTRL struct {
	primary List
	local   *InMemoryTRL
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewResilientTRL(primary List, logger *slog.Logger, opts ...circuit.Option) *ResilientTRL {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResilientTRL{
		primary: primary,
		local:   NewInMemoryTRL(),
		breaker: circuit.New("token_revocation", opts...),
		logger:  logger,
	}
}

func (t *ResilientTRL) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if err := t.local.RevokeToken(ctx, jti, ttl); err != nil {
		return err
	}
	if err := t.primary.RevokeToken(ctx, jti, ttl); err != nil {
		if t.recordFailure(ctx, err) {
			t.logger.WarnContext(ctx, "revocation kept locally only", "jti", jti, "circuit", t.breaker.Name())
			return nil
		}
		return err
	}
	t.recordSuccess(ctx)
	return nil
}

func (t *ResilientTRL) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if revoked, _ := t.local.IsRevoked(ctx, jti); revoked {
		return true, nil
	}
	revoked, err := t.primary.IsRevoked(ctx, jti)
	if err != nil {
		if t.recordFailure(ctx, err) {
			t.logger.WarnContext(ctx, "revocation check answered locally", "jti", jti, "circuit", t.breaker.Name())
			return false, nil
		}
		return false, err
	}
	t.recordSuccess(ctx)
	return revoked, nil
}

func (t *ResilientTRL) recordFailure(ctx context.Context, err error) bool {
	useFallback, change := t.breaker.RecordFailure()
	if change.Opened {
		t.logger.ErrorContext(ctx, "circuit breaker opened", "circuit", t.breaker.Name(), "error", err)
	}
	return useFallback
}

func (t *ResilientTRL) recordSuccess(ctx context.Context) {
	if _, change := t.breaker.RecordSuccess(); change.Closed {
		t.logger.InfoContext(ctx, "circuit breaker closed", "circuit", t.breaker.Name())
	}
}
