package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	// Pop removes and returns the oldest item, or an *EmptyQueueError.
	Pop() (T, error)
	// Peek returns the oldest item without removing it, or an *EmptyQueueError.
	Peek() (T, error)
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty"
}
