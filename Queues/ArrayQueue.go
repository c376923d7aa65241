package Queues

// ArrayQueue is a Queue backed by a circular array. The array grows by half of
// its length when full, and never shrinks unless Shrink is called.
type ArrayQueue[T any] struct {
	sz, head uint
	content  []T
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

// NewArrayQueue returns an empty queue that holds initCap items before growing.
func NewArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// resize moves the items to the start of a new array of length newLen, which
// mustn't be smaller than Size().
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if end := u.head + u.sz; end <= uint(len(u.content)) {
		copy(nc, u.content[u.head:end])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:end-uint(len(u.content))])
	}
	u.content, u.head = nc, 0
}

// Shrink the underlying array to fit Size().
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz)
}

// Clear the queue, also drops references held by the underlying array.
// Time: O(len)
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

// Push item to the tail.
// Time: amortized O(1)
func (u *ArrayQueue[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(l + l>>1 + 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

// Pop [Queue.Pop]
// Time: O(1)
func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.sz == 0 {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

// Peek [Queue.Peek]
// Time: O(1)
func (u *ArrayQueue[T]) Peek() (item T, e error) {
	if u.sz == 0 {
		return item, &EmptyQueueError{}
	}
	return u.content[u.head], nil
}
