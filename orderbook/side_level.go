package orderbook

// priceLevelQueue holds every order resting at one price, in FIFO arrival
// order. It backs the three alternate Side engines (btree, skiplist, heap),
// mirroring the teacher's PriceLevelV2
// (x/orderbook/keeper/orderbook_v2.go): a price level is a small ordered
// queue, and the interesting data structure is how price levels themselves
// are kept sorted.
type priceLevelQueue[K comparable] struct {
	price   float64
	entries []levelEntry[K]
}

type levelEntry[K comparable] struct {
	key   K
	order Order
}

func (pl *priceLevelQueue[K]) add(key K, o Order) {
	pl.entries = append(pl.entries, levelEntry[K]{key: key, order: o})
}

func (pl *priceLevelQueue[K]) get(key K) (Order, bool) {
	for _, en := range pl.entries {
		if en.key == key {
			return en.order, true
		}
	}
	return Order{}, false
}

// remove scans for key and drops it, preserving FIFO order of the rest.
func (pl *priceLevelQueue[K]) remove(key K) {
	for i, en := range pl.entries {
		if en.key == key {
			pl.entries = append(pl.entries[:i], pl.entries[i+1:]...)
			return
		}
	}
}

func (pl *priceLevelQueue[K]) popFront() (K, Order, bool) {
	if len(pl.entries) == 0 {
		var zeroK K
		return zeroK, Order{}, false
	}
	en := pl.entries[0]
	pl.entries = pl.entries[1:]
	return en.key, en.order, true
}

func (pl *priceLevelQueue[K]) setHeadVolume(v float64) {
	if len(pl.entries) == 0 {
		return
	}
	pl.entries[0].order.Volume = v
}

func (pl *priceLevelQueue[K]) isEmpty() bool { return len(pl.entries) == 0 }
