package orderbook

import (
	"iter"

	"github.com/huandu/skiplist"
)

// priceAsc/priceDesc are skiplist.Comparable implementations over plain
// float64 prices, one per direction — the same shape as the teacher's
// priceKeyAsc/priceKeyDesc in x/orderbook/keeper/orderbook_v2.go, just
// keyed on float64 instead of math.LegacyDec.
type priceAsc struct{}

func (priceAsc) Compare(lhs, rhs interface{}) int {
	l, r := lhs.(float64), rhs.(float64)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func (priceAsc) CalcScore(key interface{}) float64 { return key.(float64) }

type priceDesc struct{}

func (priceDesc) Compare(lhs, rhs interface{}) int {
	l, r := lhs.(float64), rhs.(float64)
	switch {
	case l > r:
		return -1
	case l < r:
		return 1
	default:
		return 0
	}
}

func (priceDesc) CalcScore(key interface{}) float64 { return -key.(float64) }

// skiplistEngine is a Side engine where price levels are nodes of a
// github.com/huandu/skiplist, grounded on the teacher's OrderBookV2.
type skiplistEngine[K comparable] struct {
	dir   Direction
	list  *skiplist.SkipList
	byKey map[K]float64
}

func newSkipListEngine[K comparable](dir Direction) *skiplistEngine[K] {
	var cmp skiplist.Comparable = priceAsc{}
	if dir == Bid {
		cmp = priceDesc{}
	}
	return &skiplistEngine[K]{
		dir:   dir,
		list:  skiplist.New(cmp),
		byKey: make(map[K]float64),
	}
}

func (e *skiplistEngine[K]) getLevel(price float64) *priceLevelQueue[K] {
	elem := e.list.Get(price)
	if elem == nil {
		return nil
	}
	return elem.Value.(*priceLevelQueue[K])
}

func (e *skiplistEngine[K]) getOrCreateLevel(price float64) *priceLevelQueue[K] {
	if lvl := e.getLevel(price); lvl != nil {
		return lvl
	}
	lvl := &priceLevelQueue[K]{price: price}
	e.list.Set(price, lvl)
	return lvl
}

func (e *skiplistEngine[K]) insert(key K, o Order) int {
	lvl := e.getOrCreateLevel(o.Price)
	lvl.add(key, o)
	e.byKey[key] = o.Price
	return e.positionOf(key)
}

func (e *skiplistEngine[K]) positionOf(key K) int {
	price, ok := e.byKey[key]
	if !ok {
		return -1
	}
	pos := 0
	for el := e.list.Front(); el != nil; el = el.Next() {
		lvl := el.Value.(*priceLevelQueue[K])
		if el.Key().(float64) == price {
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

func (e *skiplistEngine[K]) get(key K) (Order, bool) {
	price, ok := e.byKey[key]
	if !ok {
		return Order{}, false
	}
	lvl := e.getLevel(price)
	if lvl == nil {
		return Order{}, false
	}
	return lvl.get(key)
}

func (e *skiplistEngine[K]) entryAt(i int) (K, Order) {
	if i < 0 {
		panic("orderbook: position out of range")
	}
	idx := 0
	for el := e.list.Front(); el != nil; el = el.Next() {
		lvl := el.Value.(*priceLevelQueue[K])
		for _, en := range lvl.entries {
			if idx == i {
				return en.key, en.order
			}
			idx++
		}
	}
	panic("orderbook: position out of range")
}

func (e *skiplistEngine[K]) getByPosition(i int) Order {
	_, o := e.entryAt(i)
	return o
}

func (e *skiplistEngine[K]) keyAt(i int) K {
	k, _ := e.entryAt(i)
	return k
}

func (e *skiplistEngine[K]) remove(key K) {
	price, ok := e.byKey[key]
	if !ok {
		return
	}
	lvl := e.getLevel(price)
	if lvl == nil {
		return
	}
	lvl.remove(key)
	delete(e.byKey, key)
	if lvl.isEmpty() {
		e.list.Remove(price)
	}
}

func (e *skiplistEngine[K]) removeFirstN(n int) {
	for i := 0; i < n; i++ {
		front := e.list.Front()
		if front == nil {
			return
		}
		lvl := front.Value.(*priceLevelQueue[K])
		key, _, ok := lvl.popFront()
		if !ok {
			e.list.Remove(front.Key())
			continue
		}
		delete(e.byKey, key)
		if lvl.isEmpty() {
			e.list.Remove(front.Key())
		}
	}
}

func (e *skiplistEngine[K]) setHeadVolume(v float64) {
	front := e.list.Front()
	if front == nil {
		return
	}
	front.Value.(*priceLevelQueue[K]).setHeadVolume(v)
}

func (e *skiplistEngine[K]) len() int {
	total := 0
	for el := e.list.Front(); el != nil; el = el.Next() {
		total += len(el.Value.(*priceLevelQueue[K]).entries)
	}
	return total
}

func (e *skiplistEngine[K]) all() iter.Seq2[K, Order] {
	return func(yield func(K, Order) bool) {
		for el := e.list.Front(); el != nil; el = el.Next() {
			for _, en := range el.Value.(*priceLevelQueue[K]).entries {
				if !yield(en.key, en.order) {
					return
				}
			}
		}
	}
}
