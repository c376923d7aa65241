package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/g-m-twostay/go-dstructs/internal/bench"
	"github.com/g-m-twostay/go-dstructs/internal/config"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	args, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(args)
	if err != nil {
		log.Fatal("[CONFIG] ", err)
	}
	if cfg.Debug() {
		log.SetLevel(log.DebugLevel)
	}
	log.Debugf("[CONFIG] n=%d rounds=%d seed=%d workloads=%v min-finder=%v",
		cfg.N(), cfg.Rounds(), cfg.Seed(), cfg.Workloads(), cfg.MinFinder())

	results, err := bench.New(cfg).Run()
	if err != nil {
		log.Fatal("[BENCH] ", err)
	}
	if err := render(results); err != nil {
		log.Fatal("[OUTPUT] ", err)
	}
}

func render(results []bench.Result) error {
	data := pterm.TableData{{"WORKLOAD", "IMPLEMENTATION", "MEAN", "STDDEV", "SIZE"}}
	for _, r := range results {
		data = append(data, []string{r.Workload, r.Name, r.Mean.String(), r.StdDev.String(), fmt.Sprint(r.Size)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
