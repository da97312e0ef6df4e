package cq

import (
	"context"
	"iter"
)

// Values returns an iterator that yields values from the queue until
// either the queue is closed or the context is canceled.
func (q *Queue[T]) Values(ctx context.Context) iter.Seq[T] {
	get := q.Get()
	return func(yield func(T) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-get:
				if !ok || !yield(v) {
					return
				}
			}
		}
	}
}
