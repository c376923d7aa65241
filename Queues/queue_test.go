package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue_Empty(t *testing.T) {
	q := NewArrayQueue[int](0)
	var ee *EmptyQueueError
	if _, err := q.Pop(); !errors.As(err, &ee) {
		t.Errorf("Pop on empty queue returned %v, want *EmptyQueueError", err)
	}
	if _, err := q.Peek(); !errors.As(err, &ee) {
		t.Errorf("Peek on empty queue returned %v, want *EmptyQueueError", err)
	}
	if !q.Empty() || q.Size() != 0 {
		t.Errorf("new queue isn't empty")
	}
}

func TestArrayQueue_Order(t *testing.T) {
	for _, initCap := range []uint{0, 1, 7, 64} {
		q := NewArrayQueue[int](initCap)
		var want []int
		next := 0
		for range 5000 {
			if rg.Intn(3) != 0 {
				q.Push(next)
				want = append(want, next)
				next++
			} else if len(want) > 0 {
				if p, _ := q.Peek(); p != want[0] {
					t.Fatalf("cap %d: peeked %d, want %d", initCap, p, want[0])
				}
				v, err := q.Pop()
				if err != nil {
					t.Fatalf("cap %d: unexpected error %v", initCap, err)
				}
				if v != want[0] {
					t.Fatalf("cap %d: popped %d, want %d", initCap, v, want[0])
				}
				want = want[1:]
			}
			if q.Size() != uint(len(want)) {
				t.Fatalf("cap %d: size is %d, want %d", initCap, q.Size(), len(want))
			}
		}
		q.Shrink()
		for _, w := range want {
			if v, _ := q.Pop(); v != w {
				t.Fatalf("cap %d: popped %d after shrink, want %d", initCap, v, w)
			}
		}
		if !q.Empty() {
			t.Errorf("cap %d: queue not drained", initCap)
		}
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := NewArrayQueue[int](4)
	for i := range 10 {
		q.Push(i)
	}
	q.Clear()
	if !q.Empty() {
		t.Fatalf("size is %d after Clear", q.Size())
	}
	q.Push(42)
	if v, _ := q.Pop(); v != 42 {
		t.Errorf("popped %d, want 42", v)
	}
}
