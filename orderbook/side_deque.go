package orderbook

import "iter"

// dequeSlot is one cell of the slab. Occupied tracks liveness instead of a
// pointer/optional so the slab never needs to box orders.
type dequeSlot struct {
	order    Order
	occupied bool
}

// dequeEngine is the canonical Side engine: a keyed slab with a free-list,
// addressed by a sorted ring-deque of slot ids. Ported from
// original_source/src/side.rs's Side<K> (map / inverse_map / orders /
// sorting / free_list), generalized from a fixed factor-based direction
// comparator to the Direction tag used throughout this package.
type dequeEngine[K comparable] struct {
	dir   Direction
	byKey map[K]int
	keyOf map[int]K
	slots []dequeSlot
	order ringDeque[int]
	free  []int
}

func newDequeEngine[K comparable](dir Direction) *dequeEngine[K] {
	return &dequeEngine[K]{
		dir:   dir,
		byKey: make(map[K]int),
		keyOf: make(map[int]K),
	}
}

// signedPrice folds direction into the comparator: ascending on the signed
// price sorts asks low-to-high and bids high-to-low, matching
// original_source's `factor` trick (1.0 for Ask, -1.0 for Bid).
func (e *dequeEngine[K]) signedPrice(price float64) float64 {
	if e.dir == Bid {
		return -price
	}
	return price
}

// findUpperBound returns the deque-relative position of the first resting
// order whose price is strictly worse than price — the insertion point
// that preserves FIFO ordering among equal-priced orders (§4.1, §9).
func (e *dequeEngine[K]) findUpperBound(price float64) int {
	target := e.signedPrice(price)
	first, second := e.order.Segments()
	isWorse := func(slotID int) bool {
		return e.signedPrice(e.slots[slotID].order.Price) > target
	}
	return dequeUpperBound(first, second, isWorse)
}

func (e *dequeEngine[K]) allocSlot(o Order) int {
	if n := len(e.free); n > 0 {
		id := e.free[n-1]
		e.free = e.free[:n-1]
		e.slots[id] = dequeSlot{order: o, occupied: true}
		return id
	}
	e.slots = append(e.slots, dequeSlot{order: o, occupied: true})
	return len(e.slots) - 1
}

func (e *dequeEngine[K]) insert(key K, o Order) int {
	pos := e.findUpperBound(o.Price)
	id := e.allocSlot(o)
	e.order.InsertAt(pos, id)
	e.byKey[key] = id
	e.keyOf[id] = key
	return pos
}

func (e *dequeEngine[K]) get(key K) (Order, bool) {
	id, ok := e.byKey[key]
	if !ok {
		return Order{}, false
	}
	return e.slots[id].order, true
}

func (e *dequeEngine[K]) getByPosition(i int) Order {
	if i < 0 || i >= e.order.Len() {
		panic("orderbook: position out of range")
	}
	return e.slots[e.order.At(i)].order
}

func (e *dequeEngine[K]) keyAt(i int) K {
	if i < 0 || i >= e.order.Len() {
		panic("orderbook: position out of range")
	}
	return e.keyOf[e.order.At(i)]
}

func (e *dequeEngine[K]) freeSlot(id int) {
	key := e.keyOf[id]
	delete(e.byKey, key)
	delete(e.keyOf, id)
	e.slots[id] = dequeSlot{}
	e.free = append(e.free, id)
}

// remove resolves the slot id via byKey and scans the sorted deque for that
// slot id, per Open Question #4 (§9): cancellation must never rerun the
// insertion comparator, since the target key's price may not be unique on
// the ladder.
func (e *dequeEngine[K]) remove(key K) {
	id, ok := e.byKey[key]
	if !ok {
		return
	}
	for i := 0; i < e.order.Len(); i++ {
		if e.order.At(i) == id {
			e.order.RemoveAt(i)
			break
		}
	}
	e.freeSlot(id)
}

func (e *dequeEngine[K]) removeFirstN(n int) {
	if n > e.order.Len() {
		n = e.order.Len()
	}
	for i := 0; i < n; i++ {
		id, _ := e.order.PopFront()
		e.freeSlot(id)
	}
}

func (e *dequeEngine[K]) setHeadVolume(v float64) {
	if e.order.Len() == 0 {
		return
	}
	id := e.order.At(0)
	s := e.slots[id]
	s.order.Volume = v
	e.slots[id] = s
}

func (e *dequeEngine[K]) len() int { return e.order.Len() }

func (e *dequeEngine[K]) all() iter.Seq2[K, Order] {
	return func(yield func(K, Order) bool) {
		for i := 0; i < e.order.Len(); i++ {
			id := e.order.At(i)
			if !yield(e.keyOf[id], e.slots[id].order) {
				return
			}
		}
	}
}
