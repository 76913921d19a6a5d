package udcode_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/sardinas/udcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckAll_MatchesSequential verifies order and results against Check.
func TestCheckAll_MatchesSequential(t *testing.T) {
	codes := sampleCodes()
	got, err := udcode.CheckAll(context.Background(), codes)
	require.NoError(t, err)
	require.Len(t, got, len(codes))

	for i, code := range codes {
		want, err := udcode.Check(code)
		require.NoError(t, err)
		assert.Equal(t, want, got[i], code.String())
	}
}

// TestCheckAll_Cancelled ensures a cancelled context aborts the batch.
func TestCheckAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := udcode.CheckAll(ctx, sampleCodes())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCheckAll_OptionError reports the index of the failing code.
func TestCheckAll_OptionError(t *testing.T) {
	_, err := udcode.CheckAll(context.Background(), sampleCodes()[:1], udcode.WithMaxGenerations(-1))
	assert.ErrorIs(t, err, udcode.ErrOptionViolation)
	assert.Contains(t, err.Error(), "code 0")
}

// TestBatch_LimitAndFailure runs a custom CheckFunc with a concurrency limit.
func TestBatch_LimitAndFailure(t *testing.T) {
	var inFlight, peak atomic.Int32
	check := func(_ context.Context, code *udcode.Code) (udcode.Verdict, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return udcode.Check(code)
	}

	out, err := udcode.Batch(context.Background(), sampleCodes(), check, 2)
	require.NoError(t, err)
	assert.Len(t, out, len(sampleCodes()))
	assert.LessOrEqual(t, peak.Load(), int32(2))

	errBoom := errors.New("boom")
	_, err = udcode.Batch(context.Background(), sampleCodes(),
		func(context.Context, *udcode.Code) (udcode.Verdict, error) { return udcode.Verdict{}, errBoom }, 0)
	assert.ErrorIs(t, err, errBoom)

	out, err = udcode.Batch(context.Background(), nil, check, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}
