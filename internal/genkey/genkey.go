// Package genkey generates synthetic keys and orders for the cmd/orderctl
// bench subcommand, playing the same role as
// lightsgoout-go-quantcup's GenerateRandomOrder but producing a
// uuid-keyed orderbook.Order instead of a fixed-layout struct.
package genkey

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/openalpha/orderbook/orderbook"
)

// Key returns a fresh random string key, stable enough to use as an
// Orderbook[string] key.
func Key() string {
	return uuid.NewString()
}

// Generator produces synthetic orders around a mid price, spread over a
// configurable number of price ticks, with monotonically increasing
// timestamps — used to populate a book in the CLI's "bench" subcommand.
type Generator struct {
	Mid       float64
	TickSize  float64
	Ticks     int
	MaxVolume float64

	rng  *rand.Rand
	next orderbook.Timestamp
}

// NewGenerator builds a Generator seeded deterministically so benchmark
// runs are reproducible.
func NewGenerator(seed int64, mid, tickSize float64, ticks int, maxVolume float64) *Generator {
	return &Generator{
		Mid:       mid,
		TickSize:  tickSize,
		Ticks:     ticks,
		MaxVolume: maxVolume,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Next returns a fresh key and a synthetic order for the given direction.
// Ask prices are generated at or above Mid; bid prices at or below it, so
// a book populated purely from Next rarely self-crosses.
func (g *Generator) Next(dir orderbook.Direction) (string, orderbook.Order) {
	offset := float64(g.rng.Intn(g.Ticks)) * g.TickSize
	price := g.Mid + offset
	if dir == orderbook.Bid {
		price = g.Mid - offset
	}

	volume := g.rng.Float64()*g.MaxVolume + 0.0001

	ts := g.next
	g.next++

	return Key(), orderbook.Order{Price: price, Volume: volume, Timestamp: ts}
}
