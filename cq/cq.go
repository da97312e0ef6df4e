// Package cq implements simple concurrent queues.
package cq

import (
	"log/slog"
	"sync"

	"deedles.dev/flist"
)

// A Queue concurrently collects values and returns them in FIFO
// order. A zero value Queue is ready to use.
type Queue[T any] struct {
	start sync.Once
	done  chan struct{}
	stop  func()

	add chan T
	get chan T
}

func (q *Queue[T]) init() {
	q.start.Do(func() {
		q.done = make(chan struct{})
		q.stop = sync.OnceFunc(func() { close(q.done) })
		q.add = make(chan T)
		q.get = make(chan T)

		go q.run()
	})
}

// Stop stops the queue, discarding any values that have not been
// received. It is safe to call more than once.
func (q *Queue[T]) Stop() {
	q.init()
	q.stop()
}

// Add returns a channel that enqueues values sent to it. Closing this
// channel will cause the channel returned by Get to be closed once
// the Queue's contents are emptied, similar to how a regular channel
// works. Sending after the Queue is stopped panics.
func (q *Queue[T]) Add() chan<- T {
	q.init()
	return q.add
}

// Get returns a channel that yields values from the queue when they
// are available. The channel will be closed when the Queue is
// stopped.
func (q *Queue[T]) Get() <-chan T {
	q.init()
	return q.get
}

func (q *Queue[T]) run() {
	add := q.add
	var get chan T

	var s flist.List[T]
	tail := s.BeforeBegin()

	defer func() {
		close(q.get)
		if add != nil {
			close(add)
		}
		if !s.IsEmpty() {
			slog.Debug("queue stopped with pending values", "count", s.Len())
		}
	}()

	for {
		select {
		case <-q.done:
			return

		case v, ok := <-add:
			if !ok {
				add = nil
				if s.IsEmpty() {
					return
				}
				continue
			}

			tail = s.InsertAfter(tail, v)
			get = q.get

		case get <- peek(&s):
			s.PopFront()
			if s.IsEmpty() {
				if add == nil {
					return
				}

				tail = s.BeforeBegin()
				get = nil
			}
		}
	}
}

func peek[T any](s *flist.List[T]) (v T) {
	if s.IsEmpty() {
		return v
	}
	return s.Front()
}
