package cmd

import (
	"fmt"
	"os"

	"cosmossdk.io/log"

	bookio "github.com/openalpha/orderbook/io"
	"github.com/openalpha/orderbook/metrics"
	"github.com/openalpha/orderbook/orderbook"
)

// loadBook reads path, parses it with the io package's line grammar, and
// inserts every record into a fresh book one at a time so each insertion
// is metered: a successful insert bumps OrdersInserted, a key already
// resting bumps OrdersRejected and stops loading with an error.
// OrdersResting is set once every record has been inserted.
func loadBook(path string, logger log.Logger) (*orderbook.Orderbook[string], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	records, err := bookio.ParseRecords(string(raw))
	if err != nil {
		return nil, err
	}

	collector := metrics.GetCollector()
	book := orderbook.New[string]()

	for _, r := range records {
		if _, err := book.Insert(r.Key, r.Direction, r.Order); err != nil {
			collector.RecordReject(r.Direction.String())
			logger.Info("rejected order", "key", r.Key, "side", r.Direction, "err", err)
			return nil, fmt.Errorf("orderbook/io: key %q: %w", r.Key, err)
		}
		collector.RecordInsert(r.Direction.String(), orderbook.EngineDeque.String())
	}

	collector.SetResting(orderbook.Ask.String(), orderbook.EngineDeque.String(), book.Asks().Len())
	collector.SetResting(orderbook.Bid.String(), orderbook.EngineDeque.String(), book.Bids().Len())

	return book, nil
}
