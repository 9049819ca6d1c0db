package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Task produces the result for slot i.
type Task[T any] func(ctx context.Context, i int) (T, error)

// Fallback produces the result for slot i when its task failed or panicked.
type Fallback[T any] func(i int, err error) T

// PanicError wraps a value recovered from a panicking task.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

// Metrics counts join outcomes across calls. The zero value is ready to use.
type Metrics struct {
	processed atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
	recovered atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Processed int64 `json:"processed"`
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
	Recovered int64 `json:"recovered"`
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		Processed: m.processed.Load(),
		Succeeded: m.succeeded.Load(),
		Failed:    m.failed.Load(),
		Recovered: m.recovered.Load(),
	}
}

// Join runs n tasks concurrently and waits for all of them. Result i always comes
// from task i, or from fallback(i, err) when task i returned an error or panicked,
// so the join itself never fails. A panicking fallback is not recovered.
func Join[T any](ctx context.Context, n int, task Task[T], fallback Fallback[T], m *Metrics) []T {
	if n <= 0 {
		return []T{}
	}

	results := make([]T, n)
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()

			res, err := run(ctx, i, task)
			if m != nil {
				m.processed.Add(1)
			}
			if err != nil {
				if m != nil {
					m.failed.Add(1)
					if _, ok := err.(*PanicError); ok {
						m.recovered.Add(1)
					}
				}
				results[i] = fallback(i, err)
				return
			}

			if m != nil {
				m.succeeded.Add(1)
			}
			results[i] = res
		}(i)
	}

	wg.Wait()
	return results
}

func run[T any](ctx context.Context, i int, task Task[T]) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			res, err = zero, &PanicError{Value: r}
		}
	}()

	return task(ctx, i)
}
