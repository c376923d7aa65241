package bench

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-dstructs/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// orderedSet adapts an ordered container of ints to the operations of the
// ordered workload.
type orderedSet interface {
	add(v int)
	has(v int) bool
	del(v int)
	ascend() []int
	len() int
}

type bstSet struct{ t *Trees.BinarySearchTree[int] }

func newBSTSet(useMin bool) orderedSet {
	t := Trees.New[int]()
	t.UseMinValueFinder = useMin
	return bstSet{t}
}

func (s bstSet) add(v int)      { s.t.Add(v) }
func (s bstSet) has(v int) bool { return s.t.Contains(v) }
func (s bstSet) del(v int)      { s.t.Remove(v) }
func (s bstSet) len() int       { return s.t.Size() }
func (s bstSet) ascend() []int {
	r := make([]int, 0, s.t.Size())
	for v := range s.t.InOrderTraversal() {
		r = append(r, v)
	}
	return r
}

type rbtSet struct{ t *redblacktree.Tree }

func newRBTSet() orderedSet {
	return rbtSet{redblacktree.NewWithIntComparator()}
}

func (s rbtSet) add(v int) { s.t.Put(v, struct{}{}) }
func (s rbtSet) has(v int) bool {
	_, found := s.t.Get(v)
	return found
}
func (s rbtSet) del(v int) { s.t.Remove(v) }
func (s rbtSet) len() int  { return s.t.Size() }
func (s rbtSet) ascend() []int {
	r := make([]int, 0, s.t.Size())
	for it := s.t.Iterator(); it.Next(); {
		r = append(r, it.Key().(int))
	}
	return r
}

type btreeSet struct{ t *btree.BTreeG[int] }

func newBTreeSet() orderedSet {
	return btreeSet{btree.NewOrderedG[int](32)}
}

func (s btreeSet) add(v int)      { s.t.ReplaceOrInsert(v) }
func (s btreeSet) has(v int) bool { return s.t.Has(v) }
func (s btreeSet) del(v int)      { s.t.Delete(v) }
func (s btreeSet) len() int       { return s.t.Len() }
func (s btreeSet) ascend() []int {
	r := make([]int, 0, s.t.Len())
	s.t.Ascend(func(v int) bool {
		r = append(r, v)
		return true
	})
	return r
}

type llrbSet struct{ t *llrb.LLRB }

func newLLRBSet() orderedSet {
	return llrbSet{llrb.New()}
}

func (s llrbSet) add(v int)      { s.t.ReplaceOrInsert(llrb.Int(v)) }
func (s llrbSet) has(v int) bool { return s.t.Has(llrb.Int(v)) }
func (s llrbSet) del(v int)      { s.t.Delete(llrb.Int(v)) }
func (s llrbSet) len() int       { return s.t.Len() }
func (s llrbSet) ascend() []int {
	r := make([]int, 0, s.t.Len())
	s.t.AscendGreaterOrEqual(llrb.Int(math.MinInt), func(i llrb.Item) bool {
		r = append(r, int(i.(llrb.Int)))
		return true
	})
	return r
}
