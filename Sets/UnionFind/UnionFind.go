package UnionFind

import "github.com/g-m-twostay/go-dstructs/Sets"

// UnionFind is a disjoint-set forest over [0, n). parent[i]==i marks i as a
// root, and sizes[i] is only meaningful when i is a root.
// When two sets merge, the root with the greater index is attached under the
// root with the smaller one, regardless of the sizes of the sets. So the
// representative of a set is always its smallest element. Find compresses
// paths fully, so later queries stay near O(1) amortized.
// Indexes outside [0, n) panic with *IndexOutOfRangeError.
// UnionFind isn't safe for concurrent use, even Find mutates it.
type UnionFind struct {
	parent, sizes []int
	count         int
}

var _ Sets.Partition = (*UnionFind)(nil)

// New UnionFind of n singleton sets. Panics with *InvalidSizeError if n<=0.
func New(n int) *UnionFind {
	if n <= 0 {
		panic(&InvalidSizeError{n})
	}
	u := &UnionFind{parent: make([]int, n), sizes: make([]int, n), count: n}
	for i := range u.parent {
		u.parent[i], u.sizes[i] = i, 1
	}
	return u
}

func (u *UnionFind) check(i int) {
	if i < 0 || i >= len(u.parent) {
		panic(&IndexOutOfRangeError{i, len(u.parent)})
	}
}

// Find [Sets.Partition.Find]. Every element visited is re-pointed to the root.
// Time: amortized O(α(n)); Space: O(1)
func (u *UnionFind) Find(i int) int {
	u.check(i)
	root := i
	for root != u.parent[root] {
		root = u.parent[root]
	}
	for i != root {
		i, u.parent[i] = u.parent[i], root
	}
	return root
}

// Unify [Sets.Partition.Unify]
func (u *UnionFind) Unify(i1, i2 int) {
	r1, r2 := u.Find(i1), u.Find(i2)
	if r1 == r2 {
		return
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	u.parent[r2] = r1
	u.sizes[r1] += u.sizes[r2]
	u.count--
}

func (u *UnionFind) Connected(i1, i2 int) bool {
	return u.Find(i1) == u.Find(i2)
}

func (u *UnionFind) UnionSize(i int) int {
	return u.sizes[u.Find(i)]
}

// Size [Sets.Partition.Size]
// Time: O(1); Space: O(1)
func (u *UnionFind) Size() int {
	return len(u.parent)
}

// UnionCount [Sets.Partition.UnionCount]
// Time: O(1); Space: O(1)
func (u *UnionFind) UnionCount() int {
	return u.count
}
