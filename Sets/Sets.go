package Sets

// Partition is a collection of disjoint sets over the fixed universe of
// integers [0, Size()). Each set is identified by one of its elements, its
// representative, which may change after sets are merged.
type Partition interface {
	// Find the representative of the set containing i.
	Find(i int) int
	// Unify merges the sets containing i1 and i2. No-op if they are the same set.
	Unify(i1, i2 int)
	// Connected reports whether i1 and i2 are in the same set.
	Connected(i1, i2 int) bool
	// UnionSize is the number of elements in the set containing i.
	UnionSize(i int) int
	// Size of the universe.
	Size() int
	// UnionCount is the number of disjoint sets.
	UnionCount() int
}
