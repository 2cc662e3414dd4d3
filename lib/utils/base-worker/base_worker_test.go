package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("Задача выполняется периодически и переживает ошибки и панику", func(t *testing.T) {
		var calls int32
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		worker := NewInstance("test", time.Millisecond, time.Millisecond)
		go func() {
			worker.Run(ctx, func(ctx context.Context) error {
				n := atomic.AddInt32(&calls, 1)
				switch n {
				case 1:
					return errors.New("fail")
				case 2:
					panic("boom")
				}
				return nil
			})
			close(done)
		}()
		require.Eventually(t, func() bool {
			return atomic.LoadInt32(&calls) >= 3
		}, time.Second, time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("воркер не остановился")
		}
	})
}
