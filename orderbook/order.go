package orderbook

import (
	"fmt"
	"math"
)

// Order is a resting limit order. Price and Volume are plain reals: the
// core does not carry a decimal/fixed-point type, since its one canonical
// Side implementation (side_deque.go) is ported directly from
// original_source's f64-based design.
type Order struct {
	Price     float64
	Volume    float64
	Timestamp Timestamp
}

// Cost returns price * volume. Carried over from original_source/order.rs,
// which the spec's distillation dropped; it costs nothing to keep and
// callers printing order notionals would otherwise duplicate it.
func (o Order) Cost() float64 {
	return o.Price * o.Volume
}

func (o Order) String() string {
	return fmt.Sprintf("{price: %v, volume: %v, ts: %v}", o.Price, o.Volume, o.Timestamp)
}

func validPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0)
}

func validRestingVolume(v float64) bool {
	return !math.IsNaN(v) && v > 0
}
