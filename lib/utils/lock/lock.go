package lock

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var ErrBusy = errors.New("ресурс занят другой операцией, повторите попытку позже")

var (
	lockMap sync.Map
)

const retryInterval = 25 * time.Millisecond

// WithDelay выполняет safeCode под блокировкой key.
// Если за wait блокировку получить не удалось, safeCode не вызывается и success=false.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	timeout := time.NewTimer(wait)
	defer timeout.Stop()
	for {
		if _, loaded := lockMap.LoadOrStore(key, struct{}{}); !loaded {
			break
		}
		select {
		case <-timeout.C:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(retryInterval):
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}

// Run как WithDelay, но неудачный захват блокировки возвращается ошибкой ErrBusy
func Run(ctx context.Context, key string, wait time.Duration, safeCode func() error) error {
	success, err := WithDelay(ctx, key, wait, safeCode)
	if err != nil {
		return err
	}
	if !success {
		return errors.Wrapf(ErrBusy, "блокировка %s", key)
	}
	return nil
}
