package bench

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-dstructs/Sets/UnionFind"
	"github.com/g-m-twostay/go-dstructs/Trees"
	"github.com/g-m-twostay/go-dstructs/internal/config"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Result of running one implementation for all the rounds of a workload.
type Result struct {
	Workload string
	Name     string
	Mean     time.Duration
	StdDev   time.Duration
	Size     int // number of elements left in the structure after the last round
}

type Runner struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run every configured workload. An error is returned as soon as an
// implementation produces results that disagree with the expected ones.
func (r *Runner) Run() ([]Result, error) {
	var results []Result
	for _, w := range r.cfg.Workloads() {
		log.Debugf("[BENCH] running workload %s, n=%d, rounds=%d", w, r.cfg.N(), r.cfg.Rounds())
		var (
			res []Result
			err error
		)
		switch w {
		case config.WorkloadBST:
			res, err = r.runOrdered()
		case config.WorkloadUnionFind:
			res, err = r.runUnionFind()
		case config.WorkloadMembership:
			res, err = r.runMembership()
		default:
			err = fmt.Errorf("unknown workload %q", w)
		}
		if err != nil {
			return nil, fmt.Errorf("workload %s: %w", w, err)
		}
		results = append(results, res...)
	}
	return results, nil
}

func (r *Runner) newRand() *rand.Rand {
	return rand.New(rand.NewSource(r.cfg.Seed()))
}

// timeRounds calls f once per round and summarizes the durations. f returns
// the final size of its structure.
func (r *Runner) timeRounds(workload, name string, f func() (int, error)) (Result, error) {
	xs := make([]float64, r.cfg.Rounds())
	size := 0
	for i := range xs {
		start := time.Now()
		n, err := f()
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", name, err)
		}
		xs[i], size = float64(time.Since(start)), n
	}
	res := Result{Workload: workload, Name: name, Mean: time.Duration(stat.Mean(xs, nil)), Size: size}
	if len(xs) > 1 {
		res.StdDev = time.Duration(stat.StdDev(xs, nil))
	}
	log.WithFields(log.Fields{"workload": workload, "impl": name, "mean": res.Mean}).Debug("[BENCH] done")
	return res, nil
}

// runOrdered inserts a permutation, looks every value up, removes half of them
// and reads the rest in order.
func (r *Runner) runOrdered() ([]Result, error) {
	n := r.cfg.N()
	perm := r.newRand().Perm(n)
	want := slices.Sorted(slices.Values(perm[n/2:]))

	impls := []struct {
		name string
		mk   func() orderedSet
	}{
		{"BinarySearchTree", func() orderedSet { return newBSTSet(r.cfg.MinFinder()) }},
		{"gods/redblacktree", newRBTSet},
		{"google/btree", newBTreeSet},
		{"GoLLRB", newLLRBSet},
	}
	results := make([]Result, 0, len(impls))
	for _, impl := range impls {
		res, err := r.timeRounds(config.WorkloadBST, impl.name, func() (int, error) {
			s := impl.mk()
			for _, v := range perm {
				s.add(v)
			}
			for _, v := range perm {
				if !s.has(v) {
					return 0, fmt.Errorf("lost value %d", v)
				}
			}
			for _, v := range perm[:n/2] {
				s.del(v)
			}
			if !slices.Equal(s.ascend(), want) {
				return 0, fmt.Errorf("contents differ from expected")
			}
			if b, ok := s.(bstSet); ok && b.t.Corrupt() {
				return 0, fmt.Errorf("tree is corrupt")
			}
			return s.len(), nil
		})
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

type pair struct{ a, b int }

// runUnionFind merges n/2 random pairs and then answers n connectivity
// queries, checked against a labelling computed beforehand.
func (r *Runner) runUnionFind() ([]Result, error) {
	n := r.cfg.N()
	rg := r.newRand()
	unions, queries := make([]pair, n/2), make([]pair, n)
	for i := range unions {
		unions[i] = pair{rg.Intn(n), rg.Intn(n)}
	}
	for i := range queries {
		queries[i] = pair{rg.Intn(n), rg.Intn(n)}
	}
	label, count := labels(n, unions)
	log.Debugf("[BENCH] union find oracle has %d components", count)

	res, err := r.timeRounds(config.WorkloadUnionFind, "UnionFind", func() (int, error) {
		uf := UnionFind.New(n)
		for _, p := range unions {
			uf.Unify(p.a, p.b)
		}
		for _, q := range queries {
			if uf.Connected(q.a, q.b) != (label[q.a] == label[q.b]) {
				return 0, fmt.Errorf("wrong connectivity of %d and %d", q.a, q.b)
			}
		}
		if uf.UnionCount() != count {
			return 0, fmt.Errorf("union count is %d, want %d", uf.UnionCount(), count)
		}
		return uf.UnionCount(), nil
	})
	if err != nil {
		return nil, err
	}
	return []Result{res}, nil
}

// labels merges components naively, relabelling the whole universe on every
// union. Returns the component label of each element and the number of
// components.
func labels(n int, unions []pair) ([]int, int) {
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	count := n
	for _, p := range unions {
		la, lb := label[p.a], label[p.b]
		if la == lb {
			continue
		}
		for i := range label {
			if label[i] == lb {
				label[i] = la
			}
		}
		count--
	}
	return label, count
}

// runMembership inserts a permutation of [0,n) then looks up [0,2n), half of
// which are misses.
func (r *Runner) runMembership() ([]Result, error) {
	n := r.cfg.N()
	perm := r.newRand().Perm(n)

	check := func(has func(int) bool) error {
		for v := range 2 * n {
			if has(v) != (v < n) {
				return fmt.Errorf("wrong membership of %d", v)
			}
		}
		return nil
	}
	impls := []struct {
		name string
		run  func() (int, error)
	}{
		{"BinarySearchTree", func() (int, error) {
			t := Trees.New[int]()
			for _, v := range perm {
				t.Add(v)
			}
			return t.Size(), check(t.Contains)
		}},
		{"haxmap", func() (int, error) {
			m := haxmap.New[int, struct{}](uintptr(n))
			for _, v := range perm {
				m.Set(v, struct{}{})
			}
			return int(m.Len()), check(func(v int) bool {
				_, ok := m.Get(v)
				return ok
			})
		}},
		{"cornelk/hashmap", func() (int, error) {
			m := hashmap.New[int, struct{}]()
			for _, v := range perm {
				m.Set(v, struct{}{})
			}
			return m.Len(), check(func(v int) bool {
				_, ok := m.Get(v)
				return ok
			})
		}},
	}
	results := make([]Result, 0, len(impls))
	for _, impl := range impls {
		res, err := r.timeRounds(config.WorkloadMembership, impl.name, impl.run)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
