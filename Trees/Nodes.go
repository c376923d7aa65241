package Trees

import "fmt"

// A node in the BinarySearchTree.
// A node is owned by exactly one slot: either the root of the tree or the
// l or r field of its parent. nil children are absent.
type node[T any] struct {
	v    T
	l, r *node[T]
}

func (n *node[T]) String() string {
	l, r := "nil", "nil"
	if n.l != nil {
		l = fmt.Sprint(n.l.v)
	}
	if n.r != nil {
		r = fmt.Sprint(n.r.v)
	}
	return fmt.Sprintf("%v, left: %s, right: %s", n.v, l, r)
}

// minNode follows left children starting at n, which mustn't be nil.
// Time: O(D); Space: O(1)
func minNode[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// maxNode follows right children starting at n, which mustn't be nil.
// Time: O(D); Space: O(1)
func maxNode[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return max(height(n.l), height(n.r)) + 1
}

// preOrder, inOrder and postOrder walk the subtree rooting at n and stop as soon
// as yield returns false. They return false if the walk was stopped.
func preOrder[T any](n *node[T], yield func(T) bool) bool {
	return n == nil || yield(n.v) && preOrder(n.l, yield) && preOrder(n.r, yield)
}

func inOrder[T any](n *node[T], yield func(T) bool) bool {
	return n == nil || inOrder(n.l, yield) && yield(n.v) && inOrder(n.r, yield)
}

func postOrder[T any](n *node[T], yield func(T) bool) bool {
	return n == nil || postOrder(n.l, yield) && postOrder(n.r, yield) && yield(n.v)
}
