package config

import (
	"fmt"
	"slices"
)

const (
	WorkloadBST        = "bst"
	WorkloadUnionFind  = "uf"
	WorkloadMembership = "membership"
	WorkloadAll        = "all"
)

var workloads = []string{WorkloadBST, WorkloadUnionFind, WorkloadMembership}

type Config struct {
	n         int
	rounds    int
	seed      int64
	workloads []string
	minFinder bool
	debug     bool
}

// Load validates args into a Config.
func Load(args *Args) (*Config, error) {
	if args.N <= 0 {
		return nil, fmt.Errorf("invalid n %d: must be positive", args.N)
	}
	if args.Rounds <= 0 {
		return nil, fmt.Errorf("invalid rounds %d: must be positive", args.Rounds)
	}
	c := &Config{
		n:         args.N,
		rounds:    args.Rounds,
		seed:      args.Seed,
		minFinder: args.MinFinder,
		debug:     args.Debug,
	}
	switch {
	case args.Workload == WorkloadAll:
		c.workloads = slices.Clone(workloads)
	case slices.Contains(workloads, args.Workload):
		c.workloads = []string{args.Workload}
	default:
		return nil, fmt.Errorf("unknown workload %q", args.Workload)
	}
	return c, nil
}

func (c *Config) N() int {
	return c.n
}

func (c *Config) Rounds() int {
	return c.rounds
}

func (c *Config) Seed() int64 {
	return c.seed
}

// Workloads to run, in order.
func (c *Config) Workloads() []string {
	return c.workloads
}

func (c *Config) MinFinder() bool {
	return c.minFinder
}

func (c *Config) Debug() bool {
	return c.debug
}
