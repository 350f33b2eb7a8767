// Package testutil holds helpers shared by service and store tests.
package testutil

import (
	"errors"
	"sync"
	"sync/atomic"

	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/platform/sentinel"
)

// ConcurrentResult counts outcomes of a RunConcurrent call by kind.
type ConcurrentResult struct {
	Successes int32
	Errors    int32
	Conflicts int32
	NotFounds int32
}

func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Errors + r.Conflicts + r.NotFounds
}

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeConflict
	outcomeNotFound
	outcomeError
)

// classify accepts both store sentinels and domain error codes so the helper
// works for store and service tests alike.
func classify(err error) outcome {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, sentinel.ErrConflict), dErrors.HasCode(err, dErrors.CodeConflict):
		return outcomeConflict
	case errors.Is(err, sentinel.ErrNotFound), dErrors.HasCode(err, dErrors.CodeNotFound):
		return outcomeNotFound
	default:
		return outcomeError
	}
}

// RunConcurrent calls fn once per index from n goroutines and waits for all
// of them.
func RunConcurrent(n int, fn func(idx int) error) *ConcurrentResult {
	var counts [outcomeError + 1]atomic.Int32
	var wg sync.WaitGroup
	for i := range n {
		wg.Go(func() {
			counts[classify(fn(i))].Add(1)
		})
	}
	wg.Wait()

	return &ConcurrentResult{
		Successes: counts[outcomeSuccess].Load(),
		Conflicts: counts[outcomeConflict].Load(),
		NotFounds: counts[outcomeNotFound].Load(),
		Errors:    counts[outcomeError].Load(),
	}
}
