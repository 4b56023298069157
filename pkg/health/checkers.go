package health

import (
	"context"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/go-faster/errors"
)

// GoroutineCountCheck fails once more than limit goroutines are running,
// which usually means requests or dispatch loops are leaking.
func GoroutineCountCheck(limit int) CheckFunc {
	return func(_ context.Context) error {
		if n := runtime.NumGoroutine(); n > limit {
			return errors.Errorf("goroutine count %d exceeds threshold %d", n, limit)
		}
		return nil
	}
}

// GCMaxPauseCheck fails when any recent stop-the-world pause took longer
// than limit.
func GCMaxPauseCheck(limit time.Duration) CheckFunc {
	return func(_ context.Context) error {
		var stats debug.GCStats
		debug.ReadGCStats(&stats)
		for _, p := range stats.Pause {
			if p > limit {
				return errors.Errorf("GC pause %s exceeds threshold %s", p, limit)
			}
		}
		return nil
	}
}

// OldestFunc returns the creation time of the oldest item still waiting to
// be processed, and false when nothing is waiting.
type OldestFunc func(ctx context.Context) (time.Time, bool, error)

// BacklogAgeCheck fails when the oldest waiting item is older than maxAge.
// It detects a consumer that stopped making progress.
func BacklogAgeCheck(maxAge time.Duration, oldest OldestFunc) CheckFunc {
	return func(ctx context.Context) error {
		at, ok, err := oldest(ctx)
		if err != nil {
			return errors.Wrap(err, "query backlog")
		}
		if !ok {
			return nil
		}
		if age := time.Since(at); age > maxAge {
			return errors.Errorf("oldest pending item is %s old, limit %s", age.Truncate(time.Second), maxAge)
		}
		return nil
	}
}
