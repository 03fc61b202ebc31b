package orderbook

import "fmt"

// Trade is an immutable fill record emitted by resolve_matches. AggressorSide
// is an Aggressor: ask, bid, or a third "none" state for timestamp ties (see
// AggressorNone).
type Trade[K comparable] struct {
	BuyKey        K
	SellKey       K
	Price         float64
	Volume        float64
	Timestamp     Timestamp
	AggressorSide Aggressor
}

// Cost returns price * volume, mirroring Order.Cost and
// original_source/trade.rs's Trade::cost.
func (t Trade[K]) Cost() float64 {
	return t.Price * t.Volume
}

func (t Trade[K]) String() string {
	return fmt.Sprintf("{buy: %v, sell: %v, price: %v, volume: %v, ts: %v, aggressor: %v}",
		t.BuyKey, t.SellKey, t.Price, t.Volume, t.Timestamp, t.AggressorSide)
}

// Aggressor identifies which side's order caused a match by crossing an
// already-resting order, or None when both heads arrived at the same
// timestamp.
type Aggressor int8

const (
	AggressorNone Aggressor = iota
	AggressorAsk
	AggressorBid
)

func (a Aggressor) String() string {
	switch a {
	case AggressorAsk:
		return "ask"
	case AggressorBid:
		return "bid"
	default:
		return "none"
	}
}
