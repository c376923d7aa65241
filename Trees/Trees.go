package Trees

import "iter"

// Tree represents an ordered container of unique values implemented using nodes.
// Failures that are part of normal use, like inserting a value that already
// exists or removing one that doesn't, are reported through a bool. Errors are
// only returned when a value can't be produced at all, for example calling
// FindMin on an empty tree.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Add v to the Tree. Returning true if successful, false if v is already present.
	Add(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v is absent.
	Remove(v T) bool
	//Contains reports whether v is in the Tree.
	Contains(v T) bool
	//FindMin returns the smallest element, or an *EmptyTreeError.
	FindMin() (T, error)
	//FindMax returns the greatest element, or an *EmptyTreeError.
	FindMax() (T, error)
	//Height of the tree. 0 when empty.
	Height() int
	//Size of the tree.
	Size() int
	//IsEmpty is equivalent to Size()==0.
	IsEmpty() bool
	//PreOrderTraversal returns a sequence visiting each node before its subtrees.
	//Each call returns a fresh sequence. The tree must not be modified while
	//the sequence is being consumed.
	PreOrderTraversal() iter.Seq[T]
	//InOrderTraversal returns the values in ascending order. Same rules as
	//PreOrderTraversal apply.
	InOrderTraversal() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering, or the recorded size doesn't match
	//the number of reachable nodes.
	Corrupt() bool
}
