package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run("Код выполняется под блокировкой", func(t *testing.T) {
		called := false
		success, err := WithDelay(context.Background(), "job-1", time.Second, func() error {
			called = true
			return nil
		})
		require.NoError(t, err)
		require.True(t, success)
		require.True(t, called)
	})
	t.Run("Ошибка кода возвращается вызывающему", func(t *testing.T) {
		success, err := WithDelay(context.Background(), "job-2", time.Second, func() error {
			return errors.New("boom")
		})
		require.True(t, success)
		require.EqualError(t, err, "boom")
	})
	t.Run("Занятая блокировка по таймауту", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "job-3", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		err := Run(context.Background(), "job-3", 100*time.Millisecond, func() error {
			return nil
		})
		close(release)
		require.True(t, errors.Is(err, ErrBusy))
	})
	t.Run("Операции по одному ключу не пересекаются", func(t *testing.T) {
		var active, maxActive int32
		wg := sync.WaitGroup{}
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := Run(context.Background(), "job-4", 5*time.Second, func() error {
					cur := atomic.AddInt32(&active, 1)
					if cur > atomic.LoadInt32(&maxActive) {
						atomic.StoreInt32(&maxActive, cur)
					}
					time.Sleep(5 * time.Millisecond)
					atomic.AddInt32(&active, -1)
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), maxActive)
	})
}
