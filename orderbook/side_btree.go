package orderbook

import (
	"iter"

	"github.com/google/btree"
)

const btreeDegree = 32

// priceLevelItem adapts a priceLevelQueue to btree.Item, ordered by a
// direction-folded signed price so one google/btree.BTree serves both
// ascending (ask) and descending (bid) sides — same trick the teacher's
// btreeSide uses in x/orderbook/keeper/orderbook_btree.go.
type priceLevelItem[K comparable] struct {
	signed float64
	level  *priceLevelQueue[K]
}

func (a *priceLevelItem[K]) Less(than btree.Item) bool {
	return a.signed < than.(*priceLevelItem[K]).signed
}

// btreeEngine is a Side engine where price levels are nodes of a B-tree
// (O(log n) insert/lookup/delete, efficient range scans), grounded on the
// teacher's OrderBookBTree.
type btreeEngine[K comparable] struct {
	dir   Direction
	tree  *btree.BTree
	byKey map[K]float64
}

func newBTreeEngine[K comparable](dir Direction) *btreeEngine[K] {
	return &btreeEngine[K]{
		dir:   dir,
		tree:  btree.New(btreeDegree),
		byKey: make(map[K]float64),
	}
}

func (e *btreeEngine[K]) signedPrice(p float64) float64 {
	if e.dir == Bid {
		return -p
	}
	return p
}

func (e *btreeEngine[K]) getLevel(price float64) *priceLevelQueue[K] {
	item := e.tree.Get(&priceLevelItem[K]{signed: e.signedPrice(price)})
	if item == nil {
		return nil
	}
	return item.(*priceLevelItem[K]).level
}

func (e *btreeEngine[K]) getOrCreateLevel(price float64) *priceLevelQueue[K] {
	if lvl := e.getLevel(price); lvl != nil {
		return lvl
	}
	lvl := &priceLevelQueue[K]{price: price}
	e.tree.ReplaceOrInsert(&priceLevelItem[K]{signed: e.signedPrice(price), level: lvl})
	return lvl
}

func (e *btreeEngine[K]) insert(key K, o Order) int {
	lvl := e.getOrCreateLevel(o.Price)
	lvl.add(key, o)
	e.byKey[key] = o.Price
	return e.positionOf(key)
}

func (e *btreeEngine[K]) positionOf(key K) int {
	price, ok := e.byKey[key]
	if !ok {
		return -1
	}
	target := e.signedPrice(price)
	pos, found := 0, -1
	e.tree.Ascend(func(item btree.Item) bool {
		it := item.(*priceLevelItem[K])
		if it.signed == target {
			for i, en := range it.level.entries {
				if en.key == key {
					found = pos + i
					return false
				}
			}
			return false
		}
		pos += len(it.level.entries)
		return true
	})
	return found
}

func (e *btreeEngine[K]) get(key K) (Order, bool) {
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

func (e *btreeEngine[K]) entryAt(i int) (K, Order) {
	if i < 0 {
		panic("orderbook: position out of range")
	}
	idx := 0
	var foundKey K
	var foundOrder Order
	found := false
	e.tree.Ascend(func(item btree.Item) bool {
		lvl := item.(*priceLevelItem[K]).level
		for _, en := range lvl.entries {
			if idx == i {
				foundKey, foundOrder, found = en.key, en.order, true
				return false
			}
			idx++
		}
		return true
	})
	if !found {
		panic("orderbook: position out of range")
	}
	return foundKey, foundOrder
}

func (e *btreeEngine[K]) getByPosition(i int) Order {
	_, o := e.entryAt(i)
	return o
}

func (e *btreeEngine[K]) keyAt(i int) K {
	k, _ := e.entryAt(i)
	return k
}

func (e *btreeEngine[K]) remove(key K) {
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
		e.tree.Delete(&priceLevelItem[K]{signed: e.signedPrice(price)})
	}
}

func (e *btreeEngine[K]) removeFirstN(n int) {
	for i := 0; i < n; i++ {
		item := e.tree.Min()
		if item == nil {
			return
		}
		lvl := item.(*priceLevelItem[K]).level
		key, _, ok := lvl.popFront()
		if !ok {
			e.tree.DeleteMin()
			continue
		}
		delete(e.byKey, key)
		if lvl.isEmpty() {
			e.tree.DeleteMin()
		}
	}
}

func (e *btreeEngine[K]) setHeadVolume(v float64) {
	item := e.tree.Min()
	if item == nil {
		return
	}
	item.(*priceLevelItem[K]).level.setHeadVolume(v)
}

func (e *btreeEngine[K]) len() int {
	total := 0
	e.tree.Ascend(func(item btree.Item) bool {
		total += len(item.(*priceLevelItem[K]).level.entries)
		return true
	})
	return total
}

func (e *btreeEngine[K]) all() iter.Seq2[K, Order] {
	return func(yield func(K, Order) bool) {
		e.tree.Ascend(func(item btree.Item) bool {
			for _, en := range item.(*priceLevelItem[K]).level.entries {
				if !yield(en.key, en.order) {
					return false
				}
			}
			return true
		})
	}
}
