package latte

import (
	"context"
	"sync"
)

// Counter is the counting surface shared by Client and CachingClient,
// so the memoizing decorator can wrap either.
type Counter interface {
	Count(ctx context.Context, spec any, opts ...CountOption) (Result, error)
}

// CachingClient memoizes successful results of an inner Client, keyed
// by the canonicalized (emitted code, sorted flags) tuple. A hit
// short-circuits before any working directory or subprocess work; a
// validation error is returned uncached.
//
// The cache is unbounded and never evicts, matching the cross-call
// memoization this replaces. Wrap selectively if the workload has
// unbounded distinct inputs. Safe for concurrent use.
type CachingClient struct {
	inner *Client

	mu   sync.Mutex
	memo map[string]Result
}

// NewCachingClient decorates a Client with result memoization.
func NewCachingClient(inner *Client) *CachingClient {
	return &CachingClient{inner: inner, memo: make(map[string]Result)}
}

// Count behaves like Client.Count but returns a memoized result when
// an equivalent invocation (same code, same flags, regardless of
// option order) has already succeeded.
func (cc *CachingClient) Count(ctx context.Context, spec any, opts ...CountOption) (Result, error) {
	p, err := cc.inner.prepare(spec, opts)
	if err != nil {
		return Result{}, err
	}
	key := p.key()

	cc.mu.Lock()
	if res, ok := cc.memo[key]; ok {
		cc.mu.Unlock()
		return res, nil
	}
	cc.mu.Unlock()

	res, err := cc.inner.run(ctx, p)
	if err != nil {
		return Result{}, err
	}

	cc.mu.Lock()
	cc.memo[key] = res
	cc.mu.Unlock()
	return res, nil
}

// Len reports the number of memoized results, for tests and metrics.
func (cc *CachingClient) Len() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return len(cc.memo)
}
