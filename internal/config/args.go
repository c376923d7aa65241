package config

import (
	"github.com/spf13/pflag"
)

type Args struct {
	N         int
	Rounds    int
	Seed      int64
	Workload  string
	MinFinder bool
	Debug     bool
}

// ParseArgs parses the command line, without the program name. The returned
// error is pflag.ErrHelp when -h or --help is given.
func ParseArgs(arguments []string) (*Args, error) {
	args := new(Args)
	fs := pflag.NewFlagSet("dsbench", pflag.ContinueOnError)

	fs.IntVar(&args.N, "n", 10000, "number of elements used by each workload")
	fs.IntVar(&args.Rounds, "rounds", 5, "number of timed rounds per implementation")
	fs.Int64Var(&args.Seed, "seed", 1, "seed of the random inputs")
	fs.StringVar(&args.Workload, "workload", WorkloadAll, `workload to run, one of "bst", "uf", "membership" or "all"`)
	fs.BoolVar(&args.MinFinder, "min-finder", false, "remove nodes with two children using the minimum of the right subtree")
	fs.BoolVar(&args.Debug, "debug", false, "enable debug output")

	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}
	return args, nil
}
