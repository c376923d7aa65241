package Trees

import (
	"cmp"
	"iter"
	"math/bits"
	"strings"

	"github.com/g-m-twostay/go-dstructs/Queues"
	"golang.org/x/exp/constraints"
)

// Comparer is implemented by types that define their own total order.
// a.Compare(b) returns a negative number when a<b, 0 when a==b, and a positive
// number when a>b. The order is independent of ==, which is only used by the
// HasLeftValue family of methods.
type Comparer[T any] interface {
	comparable
	Compare(T) int
}

// BinarySearchTree is an unbalanced binary search tree with no repeated values.
// Values less than a node go to its left subtree, the rest go to the right. The
// worst case height D of the tree is O(n), when the values are inserted in
// sorted order; on average D=O(log n).
// UseMinValueFinder chooses how a node with two children is removed: when true,
// the node takes the minimum of its right subtree; otherwise the maximum of its
// left subtree. The zero value of BinarySearchTree isn't usable, create it using
// New or NewOf.
// BinarySearchTree isn't safe for concurrent use.
type BinarySearchTree[T comparable] struct {
	root              *node[T]
	sz                int
	compare           func(a, b T) int
	UseMinValueFinder bool
}

var _ Tree[int] = (*BinarySearchTree[int])(nil)

// New returns an empty tree of built-in ordered values, ordered by cmp.Compare.
func New[T constraints.Ordered]() *BinarySearchTree[T] {
	return &BinarySearchTree[T]{compare: cmp.Compare[T]}
}

// NewOf returns an empty tree of values ordered by their Compare method.
func NewOf[T Comparer[T]]() *BinarySearchTree[T] {
	return &BinarySearchTree[T]{compare: func(a, b T) int {
		return a.Compare(b)
	}}
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BinarySearchTree[T]) Size() int {
	return u.sz
}

// IsEmpty [Tree.IsEmpty]
// Time: O(1); Space: O(1)
func (u *BinarySearchTree[T]) IsEmpty() bool {
	return u.sz == 0
}

// Clear removes all the nodes.
func (u *BinarySearchTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// add the value v to the subtree rooting at cur recursively. cur is passed by
// reference so that the new leaf can be placed in the nil slot.
func (u *BinarySearchTree[T]) add(curPtr **node[T], v T) {
	if cur := *curPtr; cur == nil {
		*curPtr = &node[T]{v: v}
	} else if u.compare(v, cur.v) < 0 {
		u.add(&cur.l, v)
	} else {
		u.add(&cur.r, v)
	}
}

// Add [Tree.Add]. Recursive.
// Time: O(D)
func (u *BinarySearchTree[T]) Add(v T) bool {
	if u.Contains(v) {
		return false
	}
	u.add(&u.root, v)
	u.sz++
	return true
}

// remove the value v from the subtree rooting at cur recursively. cur is passed
// by reference. A node with at most one child is replaced by that child. A node
// with two children copies the value of its successor or predecessor, which
// is then removed from the subtree it came from. That removal always hits a
// node with at most one child, so the recursion ends one step later.
// Time: O(D)
func (u *BinarySearchTree[T]) remove(curPtr **node[T], v T) {
	cur := *curPtr
	if cur == nil {
		return
	}
	if c := u.compare(v, cur.v); c < 0 {
		u.remove(&cur.l, v)
	} else if c > 0 {
		u.remove(&cur.r, v)
	} else if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else if u.UseMinValueFinder {
		cur.v = minNode(cur.r).v
		u.remove(&cur.r, cur.v)
	} else {
		cur.v = maxNode(cur.l).v
		u.remove(&cur.l, cur.v)
	}
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BinarySearchTree[T]) Remove(v T) bool {
	if !u.Contains(v) {
		return false
	}
	u.remove(&u.root, v)
	u.sz--
	return true
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) Contains(v T) bool {
	for cur := u.root; cur != nil; {
		if c := u.compare(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// FindMin [Tree.FindMin]
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) FindMin() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{}
	}
	return minNode(u.root).v, nil
}

// FindMax [Tree.FindMax]
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) FindMax() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{}
	}
	return maxNode(u.root).v, nil
}

// Height [Tree.Height]. Recursive, it isn't cached.
// Time: O(n)
func (u *BinarySearchTree[T]) Height() int {
	return height(u.root)
}

// PreOrderTraversal [Tree.PreOrderTraversal]. Recursive.
func (u *BinarySearchTree[T]) PreOrderTraversal() iter.Seq[T] {
	return func(yield func(T) bool) {
		preOrder(u.root, yield)
	}
}

// InOrderTraversal [Tree.InOrderTraversal]. Recursive.
func (u *BinarySearchTree[T]) InOrderTraversal() iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrder(u.root, yield)
	}
}

// PostOrderTraversal returns a sequence visiting both subtrees of a node before
// the node itself. Recursive.
func (u *BinarySearchTree[T]) PostOrderTraversal() iter.Seq[T] {
	return func(yield func(T) bool) {
		postOrder(u.root, yield)
	}
}

// LevelOrderTraversal returns a sequence visiting the nodes level by level from
// the root, left to right within a level.
// Space: O(width of the tree)
func (u *BinarySearchTree[T]) LevelOrderTraversal() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		q := Queues.NewArrayQueue[*node[T]](uint(bits.Len(uint(u.sz))))
		for q.Push(u.root); !q.Empty(); {
			cur, _ := q.Pop()
			if !yield(cur.v) {
				return
			}
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
}

// findNode returns the node whose value == v. The search is routed by the
// ordering but the match is decided by ==.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) findNode(v T) *node[T] {
	for cur := u.root; cur != nil; {
		if cur.v == v {
			return cur
		} else if u.compare(v, cur.v) < 0 {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return nil
}

// HasLeftValue reports whether v is in the tree and its node has a left child.
func (u *BinarySearchTree[T]) HasLeftValue(v T) bool {
	n := u.findNode(v)
	return n != nil && n.l != nil
}

// HasRightValue reports whether v is in the tree and its node has a right child.
func (u *BinarySearchTree[T]) HasRightValue(v T) bool {
	n := u.findNode(v)
	return n != nil && n.r != nil
}

// LeftValue returns the value of the left child of the node holding v.
func (u *BinarySearchTree[T]) LeftValue(v T) (T, error) {
	n := u.findNode(v)
	if n == nil || n.l == nil {
		return *new(T), &InvalidOperationError{"LeftValue", v, n != nil}
	}
	return n.l.v, nil
}

// RightValue returns the value of the right child of the node holding v.
func (u *BinarySearchTree[T]) RightValue(v T) (T, error) {
	n := u.findNode(v)
	if n == nil || n.r == nil {
		return *new(T), &InvalidOperationError{"RightValue", v, n != nil}
	}
	return n.r.v, nil
}

// verify the subtree rooting at cur, whose values must lie in [lo,hi). nil
// bounds are unbounded. Returns the number of nodes and whether it's valid.
func (u *BinarySearchTree[T]) verify(cur *node[T], lo, hi *T) (int, bool) {
	if cur == nil {
		return 0, true
	}
	if lo != nil && u.compare(cur.v, *lo) < 0 || hi != nil && u.compare(cur.v, *hi) >= 0 {
		return 0, false
	}
	ln, lok := u.verify(cur.l, lo, &cur.v)
	rn, rok := u.verify(cur.r, &cur.v, hi)
	return ln + rn + 1, lok && rok
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BinarySearchTree[T]) Corrupt() bool {
	n, ok := u.verify(u.root, nil, nil)
	return !ok || n != u.sz
}

// String prints every node in pre-order, one per line, as "v, left: l, right: r".
func (u *BinarySearchTree[T]) String() string {
	var sb strings.Builder
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n != nil {
			sb.WriteString(n.String())
			sb.WriteByte('\n')
			walk(n.l)
			walk(n.r)
		}
	}
	walk(u.root)
	return sb.String()
}
