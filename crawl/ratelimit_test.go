package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/alaskavn/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first wait returns immediately", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewLimiter(time.Second)

		begin := time.Now()
		require.NoError(t, l.Wait(context.Background()))
		assert.Less(t, time.Since(begin), 100*time.Millisecond)
	})

	t.Run("subsequent waits enforce the delay", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewLimiter(50 * time.Millisecond)
		ctx := context.Background()

		require.NoError(t, l.Wait(ctx))
		begin := time.Now()
		require.NoError(t, l.Wait(ctx))
		assert.GreaterOrEqual(t, time.Since(begin), 40*time.Millisecond)
	})

	t.Run("zero delay never blocks", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewLimiter(0)
		ctx := context.Background()

		begin := time.Now()
		for range 100 {
			require.NoError(t, l.Wait(ctx))
		}
		assert.Less(t, time.Since(begin), 100*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		l := crawl.NewLimiter(time.Hour)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, l.Wait(ctx))
		cancel()
		require.Error(t, l.Wait(ctx))
	})
}
