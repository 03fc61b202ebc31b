package orderbook

import (
	"container/heap"
	"iter"
)

// priceHeapItem is one price's slot in the priceHeap.
type priceHeapItem struct {
	price float64
	index int
}

// priceHeap implements container/heap.Interface to maintain the set of
// occupied prices in priority order, same role as the teacher's priceHeap
// in x/orderbook/keeper/orderbook_hashmap.go — except keyed directly on
// float64 instead of a stringified decimal, since float64 is already a
// valid, hashable Go map key.
type priceHeap struct {
	items   []*priceHeapItem
	indexOf map[float64]int
	desc    bool
}

func newPriceHeap(desc bool) *priceHeap {
	return &priceHeap{indexOf: make(map[float64]int), desc: desc}
}

func (h *priceHeap) Len() int { return len(h.items) }

func (h *priceHeap) Less(i, j int) bool {
	if h.desc {
		return h.items[i].price > h.items[j].price
	}
	return h.items[i].price < h.items[j].price
}

func (h *priceHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
	h.indexOf[h.items[i].price] = i
	h.indexOf[h.items[j].price] = j
}

func (h *priceHeap) Push(x interface{}) {
	item := x.(*priceHeapItem)
	item.index = len(h.items)
	h.items = append(h.items, item)
	h.indexOf[item.price] = item.index
}

func (h *priceHeap) Pop() interface{} {
	n := len(h.items)
	item := h.items[n-1]
	h.items[n-1] = nil
	h.items = h.items[:n-1]
	delete(h.indexOf, item.price)
	return item
}

func (h *priceHeap) Peek() (float64, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	return h.items[0].price, true
}

func (h *priceHeap) removePrice(price float64) {
	if idx, ok := h.indexOf[price]; ok {
		heap.Remove(h, idx)
	}
}

// sortedPrices returns every occupied price in priority order without
// disturbing the live heap (mirrors the teacher's Clone-then-drain
// iteration in hashBookSide.Iterate).
func (h *priceHeap) sortedPrices() []float64 {
	clone := &priceHeap{desc: h.desc, indexOf: make(map[float64]int, len(h.items))}
	for _, it := range h.items {
		clone.items = append(clone.items, &priceHeapItem{price: it.price})
	}
	out := make([]float64, 0, len(clone.items))
	for clone.Len() > 0 {
		out = append(out, heap.Pop(clone).(*priceHeapItem).price)
	}
	return out
}

// heapEngine is a Side engine where occupied prices are tracked with
// container/heap and each maps (via a plain Go map) to a FIFO price level,
// grounded on the teacher's hashBookSide/OrderBookHashMap (dYdX-style).
type heapEngine[K comparable] struct {
	dir    Direction
	levels map[float64]*priceLevelQueue[K]
	heap   *priceHeap
	byKey  map[K]float64
}

func newHeapEngine[K comparable](dir Direction) *heapEngine[K] {
	return &heapEngine[K]{
		dir:    dir,
		levels: make(map[float64]*priceLevelQueue[K]),
		heap:   newPriceHeap(dir == Bid),
		byKey:  make(map[K]float64),
	}
}

func (e *heapEngine[K]) getOrCreateLevel(price float64) *priceLevelQueue[K] {
	if lvl, ok := e.levels[price]; ok {
		return lvl
	}
	lvl := &priceLevelQueue[K]{price: price}
	e.levels[price] = lvl
	heap.Push(e.heap, &priceHeapItem{price: price})
	return lvl
}

func (e *heapEngine[K]) insert(key K, o Order) int {
	lvl := e.getOrCreateLevel(o.Price)
	lvl.add(key, o)
	e.byKey[key] = o.Price
	return e.positionOf(key)
}

func (e *heapEngine[K]) positionOf(key K) int {
	price, ok := e.byKey[key]
	if !ok {
		return -1
	}
	pos := 0
	for _, p := range e.heap.sortedPrices() {
		lvl := e.levels[p]
		if p == price {
			for i, en := range lvl.entries {
				if en.key == key {
					return pos + i
				}
			}
			return -1
		}
		pos += len(lvl.entries)
	}
	return -1
}

func (e *heapEngine[K]) get(key K) (Order, bool) {
	price, ok := e.byKey[key]
	if !ok {
		return Order{}, false
	}
	lvl, ok := e.levels[price]
	if !ok {
		return Order{}, false
	}
	return lvl.get(key)
}

func (e *heapEngine[K]) entryAt(i int) (K, Order) {
	if i < 0 {
		panic("orderbook: position out of range")
	}
	idx := 0
	for _, p := range e.heap.sortedPrices() {
		lvl := e.levels[p]
		for _, en := range lvl.entries {
			if idx == i {
				return en.key, en.order
			}
			idx++
		}
	}
	panic("orderbook: position out of range")
}

func (e *heapEngine[K]) getByPosition(i int) Order {
	_, o := e.entryAt(i)
	return o
}

func (e *heapEngine[K]) keyAt(i int) K {
	k, _ := e.entryAt(i)
	return k
}

func (e *heapEngine[K]) remove(key K) {
	price, ok := e.byKey[key]
	if !ok {
		return
	}
	lvl, ok := e.levels[price]
	if !ok {
		return
	}
	lvl.remove(key)
	delete(e.byKey, key)
	if lvl.isEmpty() {
		delete(e.levels, price)
		e.heap.removePrice(price)
	}
}

func (e *heapEngine[K]) removeFirstN(n int) {
	for i := 0; i < n; i++ {
		price, ok := e.heap.Peek()
		if !ok {
			return
		}
		lvl := e.levels[price]
		key, _, ok := lvl.popFront()
		if !ok {
			delete(e.levels, price)
			e.heap.removePrice(price)
			continue
		}
		delete(e.byKey, key)
		if lvl.isEmpty() {
			delete(e.levels, price)
			e.heap.removePrice(price)
		}
	}
}

func (e *heapEngine[K]) setHeadVolume(v float64) {
	price, ok := e.heap.Peek()
	if !ok {
		return
	}
	e.levels[price].setHeadVolume(v)
}

func (e *heapEngine[K]) len() int {
	total := 0
	for _, lvl := range e.levels {
		total += len(lvl.entries)
	}
	return total
}

func (e *heapEngine[K]) all() iter.Seq2[K, Order] {
	return func(yield func(K, Order) bool) {
		for _, p := range e.heap.sortedPrices() {
			for _, en := range e.levels[p].entries {
				if !yield(en.key, en.order) {
					return
				}
			}
		}
	}
}
