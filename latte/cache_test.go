package latte_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/latte"
	"github.com/katalvlaran/lattix/polytope"
)

// TestCachingClient_Hit: an identical (specification, options) pair is
// served from memory; the engine runs exactly once.
func TestCachingClient_Hit(t *testing.T) {
	eng := &stubEngine{out: latte.RunResult{NumFile: "45"}}
	cc := latte.NewCachingClient(latte.NewClient(latte.WithEngine(eng)))
	ctx := context.Background()

	first, err := cc.Count(ctx, polytope.Constraints(triangle...))
	require.NoError(t, err)
	second, err := cc.Count(ctx, polytope.Constraints(triangle...))
	require.NoError(t, err)

	assert.Equal(t, 1, eng.calls, "second call must be a cache hit")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cc.Len())
}

// TestCachingClient_KeyIncludesOptions: the same polytope under
// different options is a different cache entry.
func TestCachingClient_KeyIncludesOptions(t *testing.T) {
	eng := &stubEngine{out: latte.RunResult{NumFile: "45"}}
	cc := latte.NewCachingClient(latte.NewClient(latte.WithEngine(eng)))
	ctx := context.Background()

	_, err := cc.Count(ctx, polytope.Constraints(triangle...))
	require.NoError(t, err)
	_, err = cc.Count(ctx, polytope.Constraints(triangle...), latte.WithDilation(2))
	require.NoError(t, err)

	assert.Equal(t, 2, eng.calls)
	assert.Equal(t, 2, cc.Len())
}

// TestCachingClient_OrderInsensitiveKey: option order does not defeat
// memoization.
func TestCachingClient_OrderInsensitiveKey(t *testing.T) {
	eng := &stubEngine{out: latte.RunResult{Stdout: "1 + 2 * t\ndone\n"}}
	cc := latte.NewCachingClient(latte.NewClient(latte.WithEngine(eng)))
	ctx := context.Background()

	_, err := cc.Count(ctx, polytope.Constraints(triangle...),
		latte.WithEhrhartPolynomial(), latte.WithDilation(3))
	require.NoError(t, err)
	_, err = cc.Count(ctx, polytope.Constraints(triangle...),
		latte.WithDilation(3), latte.WithEhrhartPolynomial())
	require.NoError(t, err)

	assert.Equal(t, 1, eng.calls)
}

// TestCachingClient_ErrorsUncached: validation failures are never
// memoized and never reach the engine.
func TestCachingClient_ErrorsUncached(t *testing.T) {
	eng := &stubEngine{}
	cc := latte.NewCachingClient(latte.NewClient(latte.WithEngine(eng)))
	ctx := context.Background()

	_, err := cc.Count(ctx, polytope.Constraints("x >< 1"))
	assert.ErrorIs(t, err, polytope.ErrMalformedInequality)
	_, err = cc.Count(ctx, polytope.Constraints("x >< 1"))
	assert.ErrorIs(t, err, polytope.ErrMalformedInequality)

	assert.Zero(t, eng.calls)
	assert.Zero(t, cc.Len())
}

// TestCachingClient_SatisfiesCounter keeps the interface honest.
func TestCachingClient_SatisfiesCounter(t *testing.T) {
	var _ latte.Counter = latte.NewCachingClient(latte.NewClient(
		latte.WithEngine(&stubEngine{out: latte.RunResult{NumFile: "0"}})))
	var _ latte.Counter = latte.NewClient(latte.WithEngine(&stubEngine{}))
}
