package perf

import (
	"fmt"
	"time"

	gometrics "github.com/rcrowley/go-metrics"

	"github.com/mlehner/strkit/cmd/util"
	"github.com/mlehner/strkit/lib/list"
	"github.com/mlehner/strkit/lib/sortedmap"
	"github.com/mlehner/strkit/lib/str"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// PerfCmd micro-benchmarks the sorted maps: upsert and lookup against
	// a flat Map and merge-inserts against a ListMap, reporting per-op
	// timing percentiles.
	PerfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Benchmark the sorted map operations",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}

	perfOps  = 100000
	perfKeys = 1000
)

func init() {
	key := "n"
	PerfCmd.Flags().Int(key, 100000, util.WrapString("Number of operations per benchmark"))
	key = "keys"
	PerfCmd.Flags().Int(key, 1000, util.WrapString("How many distinct keys to spread the operations over"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	perfOps = viper.GetInt("n")
	perfKeys = viper.GetInt("keys")
	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {
	fmt.Printf("running %d operations over %d keys\n\n", perfOps, perfKeys)

	registry := gometrics.NewRegistry()

	keys := make([]str.Str, perfKeys)
	for i := range keys {
		keys[i] = str.Format("key-%06d", i)
	}

	flat := sortedmap.NewMap()
	timed(registry, "map.put", func(i int) {
		flat.Put(keys[i%perfKeys], str.Of("value"))
	})
	timed(registry, "map.get", func(i int) {
		flat.Get(keys[i%perfKeys])
	})

	grouped := sortedmap.NewListMap()
	timed(registry, "listmap.put", func(i int) {
		one := list.New()
		one.Append(str.Of("value"))
		grouped.PutOwned(keys[i%perfKeys], one)
	})

	printResults(registry)
	return nil
}

// timed runs fn perfOps times under a registered timer.
func timed(registry gometrics.Registry, name string, fn func(i int)) {
	timer := gometrics.GetOrRegisterTimer(name, registry)
	for i := 0; i < perfOps; i++ {
		start := time.Now()
		fn(i)
		timer.UpdateSince(start)
	}
}

func printResults(registry gometrics.Registry) {
	registry.Each(func(name string, metric interface{}) {
		timer, ok := metric.(gometrics.Timer)
		if !ok {
			return
		}
		snap := timer.Snapshot()
		fmt.Printf("%-12s count=%d mean=%v p50=%v p99=%v max=%v\n",
			name,
			snap.Count(),
			time.Duration(int64(snap.Mean())),
			time.Duration(int64(snap.Percentile(0.5))),
			time.Duration(int64(snap.Percentile(0.99))),
			time.Duration(snap.Max()),
		)
	})
}
