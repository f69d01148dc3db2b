package streams

import (
	"context"
	"errors"
	"time"
)

var (
	ErrQueueFull      = errors.New("queue is full")
	ErrQueueStopped   = errors.New("queue is stopped")
	ErrDequeueTimeout = errors.New("dequeue timed out")
)

type envelope[T any] struct {
	msg    T
	poison bool
}

// BoundedQueue is a fixed-capacity FIFO shared by many producers and one consumer.
// Enqueue never blocks; a full queue is reported to the producer instead.
type BoundedQueue[T any] struct {
	messages chan envelope[T]
}

func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &BoundedQueue[T]{messages: make(chan envelope[T], capacity)}
}

// TryEnqueue appends msg or returns ErrQueueFull.
func (queue *BoundedQueue[T]) TryEnqueue(msg T) error {
	select {
	case queue.messages <- envelope[T]{msg: msg}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue waits up to timeout for the next message.
// It returns ErrQueueStopped once the poison message is reached.
func (queue *BoundedQueue[T]) Dequeue(ctx context.Context, timeout time.Duration) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-timer.C:
		return zero, ErrDequeueTimeout
	case env := <-queue.messages:
		if env.poison {
			return zero, ErrQueueStopped
		}
		return env.msg, nil
	}
}

// Poison enqueues the shutdown sentinel behind every pending message, waiting for
// room if the queue is full.
func (queue *BoundedQueue[T]) Poison(ctx context.Context) error {
	select {
	case queue.messages <- envelope[T]{poison: true}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len is the number of pending messages.
func (queue *BoundedQueue[T]) Len() int {
	return len(queue.messages)
}

func (queue *BoundedQueue[T]) Cap() int {
	return cap(queue.messages)
}
