package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	l, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBurst, l.Burst())
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Rate: -1, Burst: 5})
	assert.Error(t, err)

	_, err = New(Config{Rate: 10, Burst: -5})
	assert.Error(t, err)
}

func TestWait_ConsumesOneTokenPerCall(t *testing.T) {
	l, err := New(Config{Rate: 1000, Burst: 5})
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Wait(ctx))
	}

	// Bucket was drained; the next acquisition needs a refill.
	assert.Less(t, l.Tokens(), 1.5)
}

func TestTokens_NeverExceedBurst(t *testing.T) {
	l, err := New(Config{Rate: 1_000_000, Burst: 3})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	assert.LessOrEqual(t, l.Tokens(), float64(3))
}

func TestWait_BlocksUntilRefill(t *testing.T) {
	l, err := New(Config{Rate: 100, Burst: 1})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, l.Wait(ctx))

	// The bucket is empty; the second acquisition must wait for at least
	// one refill interval (10ms at 100 tokens/sec).
	start := time.Now()
	require.NoError(t, l.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestWait_ContextCanceled(t *testing.T) {
	l, err := New(Config{Rate: 0.001, Burst: 1})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, l.Wait(ctx))

	cancelCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(cancelCtx))
}

func TestAllow(t *testing.T) {
	l, err := New(Config{Rate: 0.001, Burst: 1})
	require.NoError(t, err)

	assert.True(t, l.Allow())
	assert.False(t, l.Allow())
}

func TestPrometheusMetrics_RecordsAcquisitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	l, err := New(Config{Rate: 1000, Burst: 2, Metrics: m})
	require.NoError(t, err)

	require.NoError(t, l.Wait(context.Background()))
	require.NoError(t, l.Wait(context.Background()))

	got := testutil.ToFloat64(m.acquisitions.WithLabelValues("acquired"))
	assert.Equal(t, 2.0, got)
}
