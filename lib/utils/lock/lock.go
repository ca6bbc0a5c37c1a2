package lock

import (
	"context"
	"sync"
	"time"
)

var (
	lockMap sync.Map
)

// WithDelay выполняет safeCode, удерживая ключ, ждет освобождения ключа не дольше wait
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	isTimeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(50 * time.Millisecond):
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}
