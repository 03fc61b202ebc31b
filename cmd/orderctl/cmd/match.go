package cmd

import (
	"time"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	bookio "github.com/openalpha/orderbook/io"
	"github.com/openalpha/orderbook/metrics"
	"github.com/openalpha/orderbook/orderbook"
)

func newMatchCmd(logger log.Logger) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Load a book, resolve matches, and print the trades and the resulting book",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := loadBook(path, logger)
			if err != nil {
				return err
			}

			start := time.Now()
			trades := book.ResolveMatches()
			elapsed := time.Since(start)

			collector := metrics.GetCollector()
			var volume float64
			for _, t := range trades {
				volume += t.Volume
			}
			collector.RecordTrades(orderbook.EngineDeque.String(), len(trades), volume, elapsed.Seconds())
			collector.SetResting(orderbook.Ask.String(), orderbook.EngineDeque.String(), book.Asks().Len())
			collector.SetResting(orderbook.Bid.String(), orderbook.EngineDeque.String(), book.Bids().Len())

			logger.Info("resolved matches", "trades", len(trades), "elapsed", elapsed)
			for _, t := range trades {
				cmd.Println(t.String())
			}
			cmd.Print(bookio.FormatBook(book))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "path to a book file (side; key; volume; price per line)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
