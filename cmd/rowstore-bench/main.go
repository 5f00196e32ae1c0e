// Command rowstore-bench is a basic microbenchmark driver for rowstore.
//
// It inserts N rows of stringified integer pairs, then performs N equality
// lookups on column 0, and reports wall time and throughput for each phase.
// An optional hash index on column 0 shows the indexed lookup path against
// the full-scan fallback.
//
// Usage:
//
//	rowstore-bench [--rounds=N] [--use-index]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/rowstore"
	"github.com/hupe1980/rowstore/index"
	"github.com/hupe1980/rowstore/query"
	"github.com/hupe1980/rowstore/row"
)

func main() {
	var (
		rounds   int
		useIndex bool
	)

	cmd := &cobra.Command{
		Use:          "rowstore-bench",
		Short:        "Benchmark rowstore insert and lookup throughput",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds <= 0 {
				return fmt.Errorf("invalid rounds %d: must be positive", rounds)
			}
			return run(rounds, useIndex)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&rounds, "rounds", 1000000, "Number of rows to insert and look up.")
	flags.BoolVar(&useIndex, "use-index", false, "Install a hash index on column 0 for fast lookups.")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(rounds int, useIndex bool) error {
	store := rowstore.New[string](2)

	if useIndex {
		store.Index(0, index.Hash[string]())
	}

	t0 := time.Now()

	for i := 0; i < rounds; i++ {
		istr := strconv.Itoa(i)
		store.Insert(row.Slice[string]{istr, istr})
	}

	t1 := time.Now()

	var matched int
	for i := 0; i < rounds; i++ {
		for range store.Find(query.Eq(0, strconv.Itoa(i))) {
			matched++
		}
	}

	t2 := time.Now()

	if matched != rounds {
		return fmt.Errorf("lookup phase matched %d rows, want %d", matched, rounds)
	}

	put := t1.Sub(t0)
	get := t2.Sub(t1)
	fmt.Printf("put time: %.2fms (%.2f puts/sec)\n", float64(put.Milliseconds()), opsPerSec(rounds, put))
	fmt.Printf("get time: %.2fms (%.2f gets/sec)\n", float64(get.Milliseconds()), opsPerSec(rounds, get))

	return nil
}

func opsPerSec(rounds int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(rounds) / d.Seconds()
}
