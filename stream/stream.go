// Package stream is an unbounded multi-producer, single-consumer queue used
// to hand search results to a reader while workers are still scanning.
package stream

import (
	"iter"
	"sync"
)

// Stream delivers values in the order they were sent. Send never blocks.
// The consumer reads C until it is closed, or calls Stop to walk away.
type Stream[T any] struct {
	mu      sync.Mutex
	cond    *sync.Cond
	buf     []T
	closed  bool
	stopped bool
	err     error

	out      chan T
	done     chan struct{}
	stopOnce sync.Once
	sent     int
}

// New creates a stream and starts its delivery goroutine.
func New[T any]() *Stream[T] {
	s := &Stream[T]{
		out:  make(chan T),
		done: make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	go s.pump()
	return s
}

func (s *Stream[T]) pump() {
	defer close(s.out)
	for {
		s.mu.Lock()
		for len(s.buf) == 0 && !s.closed && !s.stopped {
			s.cond.Wait()
		}
		if s.stopped || len(s.buf) == 0 {
			s.buf = nil
			s.mu.Unlock()
			return
		}
		v := s.buf[0]
		var zero T
		s.buf[0] = zero
		s.buf = s.buf[1:]
		s.mu.Unlock()

		select {
		case s.out <- v:
		case <-s.done:
			return
		}
	}
}

// Send queues v. Values sent after Close or Stop are dropped.
func (s *Stream[T]) Send(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.stopped {
		return
	}
	s.buf = append(s.buf, v)
	s.sent++
	s.cond.Signal()
}

// Close marks the end of production. Queued values are still delivered.
func (s *Stream[T]) Close() {
	s.CloseWithError(nil)
}

// CloseWithError is Close recording why production ended early. A nil err
// is a normal end.
func (s *Stream[T]) CloseWithError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.err = err
	}
	s.closed = true
	s.cond.Signal()
}

// Err returns the error production ended with, if any. It is final once C
// has been closed.
func (s *Stream[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Stop tells the stream the consumer is gone; pending values are discarded.
func (s *Stream[T]) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		s.stopped = true
		s.cond.Signal()
		s.mu.Unlock()
	})
}

// C is the delivery channel. It is closed after Close once the queue drains,
// or right after Stop.
func (s *Stream[T]) C() <-chan T {
	return s.out
}

// Sent returns how many values were accepted so far.
func (s *Stream[T]) Sent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent
}

// All ranges over the delivered values. Breaking out of the loop stops the
// stream.
func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.out {
			if !yield(v) {
				s.Stop()
				return
			}
		}
	}
}

// Collect drains the stream into a slice.
func (s *Stream[T]) Collect() []T {
	var out []T
	for v := range s.out {
		out = append(out, v)
	}
	return out
}
