// Package chflow provides context-aware helpers for consuming Go channels, so
// long-running loops stop promptly when their context is canceled.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done. The boolean is
// false when the context ended first or the channel was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// ForEach calls fn for every value received from ch until the channel is
// closed or ctx is done. fn runs on the calling goroutine, one value at a
// time.
func ForEach[T any](ctx context.Context, ch <-chan T, fn func(context.Context, T)) {
	for {
		data, ok := Receive(ctx, ch)
		if !ok {
			return
		}

		fn(ctx, data)
	}
}
