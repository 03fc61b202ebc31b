// Package io provides the plain-text line format used to load and dump an
// orderbook.Orderbook from outside the core: "side; key; volume; price"
// per line, one resting order each, side in {"a", "b"}. It exists as an
// external collaborator around the core (spec §6: "no wire protocol...
// belong to callers").
package io

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openalpha/orderbook/orderbook"
)

// Record is one parsed input line: a direction, a key, and the order to
// insert under it.
type Record struct {
	Direction orderbook.Direction
	Key       string
	Order     orderbook.Order
}

// ParseRecords reads one order per line in "side; key; volume; price"
// form, where side is "a" (ask) or "b" (bid). A line's position in the
// whole stream is its timestamp (line 0 → timestamp 0), so arrival order
// across both sides is preserved exactly as given — not restarted per
// side. Blank lines are skipped and do not advance the counter. An
// unrecognized side token is a fatal input error, per spec §6.
// ParseRecords does not insert anything itself, so callers can observe
// (and meter) each insertion individually.
func ParseRecords(s string) ([]Record, error) {
	var records []Record

	ts := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) != 4 {
			return nil, fmt.Errorf("orderbook/io: line %d: want 4 fields (side; key; volume; price), got %d", ts+1, len(fields))
		}

		sideTok := strings.TrimSpace(fields[0])
		key := strings.TrimSpace(fields[1])
		volume, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("orderbook/io: line %d: volume: %w", ts+1, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("orderbook/io: line %d: price: %w", ts+1, err)
		}

		var dir orderbook.Direction
		switch sideTok {
		case "a":
			dir = orderbook.Ask
		case "b":
			dir = orderbook.Bid
		default:
			return nil, fmt.Errorf("orderbook/io: line %d: unknown side token %q, want \"a\" or \"b\"", ts+1, sideTok)
		}

		records = append(records, Record{
			Direction: dir,
			Key:       key,
			Order:     orderbook.Order{Price: price, Volume: volume, Timestamp: orderbook.Timestamp(ts)},
		})
		ts++
	}

	return records, nil
}

// ParseOrderbook parses records (see ParseRecords) and inserts every one
// into a fresh two-sided Orderbook.
func ParseOrderbook(s string) (*orderbook.Orderbook[string], error) {
	records, err := ParseRecords(s)
	if err != nil {
		return nil, err
	}

	book := orderbook.New[string]()
	for _, r := range records {
		if _, err := book.Insert(r.Key, r.Direction, r.Order); err != nil {
			return nil, fmt.Errorf("orderbook/io: key %q: %w", r.Key, err)
		}
	}
	return book, nil
}

// FormatSide renders a Side the way original_source's Display impl for
// Orderbook<K> does: a direction header line, then one "volume\t@\tprice"
// line per resting order in price-time-priority order.
func FormatSide[K comparable](s *orderbook.Side[K]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Direction())
	for _, o := range s.All() {
		fmt.Fprintf(&b, "%v\t@\t%v\n", o.Volume, o.Price)
	}
	return b.String()
}

// FormatBook renders both sides of book: asks, a blank line, then bids.
func FormatBook(book *orderbook.Orderbook[string]) string {
	return FormatSide(book.Asks()) + "\n" + FormatSide(book.Bids())
}
