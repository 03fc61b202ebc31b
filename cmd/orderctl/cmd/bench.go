package cmd

import (
	"time"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/openalpha/orderbook/internal/genkey"
	"github.com/openalpha/orderbook/orderbook"
)

var allEngines = []orderbook.EngineKind{
	orderbook.EngineDeque,
	orderbook.EngineBTree,
	orderbook.EngineSkipList,
	orderbook.EngineHeap,
}

func newBenchCmd(logger log.Logger) *cobra.Command {
	var orders int
	var ticks int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Populate a synthetic book on every Side engine and compare insert+match time",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range allEngines {
				elapsed, trades := runBench(kind, orders, ticks)
				cmd.Printf("%-8s orders=%-6d trades=%-6d elapsed=%s\n", kind, orders, trades, elapsed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&orders, "orders", 5000, "number of resting orders to generate per side")
	cmd.Flags().IntVar(&ticks, "ticks", 200, "number of distinct price ticks to spread orders across")

	return cmd
}

func runBench(kind orderbook.EngineKind, orders, ticks int) (time.Duration, int) {
	book, err := orderbook.NewWithEngine[string](kind)
	if err != nil {
		panic(err)
	}
	gen := genkey.NewGenerator(1, 100.0, 0.05, ticks, 10.0)

	start := time.Now()
	for i := 0; i < orders; i++ {
		key, o := gen.Next(orderbook.Ask)
		book.InsertAsk(key, o)
		key, o = gen.Next(orderbook.Bid)
		book.InsertBid(key, o)
	}
	trades := book.ResolveMatches()
	elapsed := time.Since(start)

	return elapsed, len(trades)
}
