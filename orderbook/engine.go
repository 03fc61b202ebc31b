package orderbook

import "iter"

// sideEngine is the swappable backend behind Side[K]. Side itself owns the
// caller-facing contract (§4.1); an engine only has to maintain price-time
// order and answer positional/key queries. This interface is modeled
// directly on the teacher's OrderBookEngine
// (x/orderbook/keeper/orderbook_interface.go), which lets the teacher swap
// between a skip-list, a hashmap+heap, a B-tree, and an adaptive radix tree
// without touching the keeper logic above it.
type sideEngine[K comparable] interface {
	insert(key K, o Order) int
	get(key K) (Order, bool)
	getByPosition(i int) Order
	keyAt(i int) K
	remove(key K)
	removeFirstN(n int)
	setHeadVolume(v float64)
	len() int
	all() iter.Seq2[K, Order]
}

// EngineKind selects which sideEngine backs a Side. The default,
// EngineDeque, is the slab+free-list+sorted-deque design spec'd in §4.1/§9
// and ported from original_source/src/side.rs. The others are alternate
// backends the spec explicitly invites substituting ("Implementations may
// substitute a balanced BST or a skip-list", §9) — each backed by a
// different teacher dependency.
type EngineKind int

const (
	// EngineDeque is the canonical slab + free-list + sorted ring-deque
	// engine with O(log n) upper-bound insertion search and O(1) head
	// consumption.
	EngineDeque EngineKind = iota
	// EngineBTree backs each price with a FIFO queue inside a
	// github.com/google/btree, the same structure as the teacher's
	// OrderBookBTree.
	EngineBTree
	// EngineSkipList backs each price with a FIFO queue inside a
	// github.com/huandu/skiplist, the same structure as the teacher's
	// OrderBookV2.
	EngineSkipList
	// EngineHeap backs each price with a FIFO queue, using container/heap
	// over the set of occupied prices, the same structure as the
	// teacher's OrderBookHashMap.
	EngineHeap
)

func (k EngineKind) String() string {
	switch k {
	case EngineDeque:
		return "deque"
	case EngineBTree:
		return "btree"
	case EngineSkipList:
		return "skiplist"
	case EngineHeap:
		return "heap"
	default:
		return "unknown"
	}
}

func newEngine[K comparable](kind EngineKind, dir Direction) (sideEngine[K], error) {
	switch kind {
	case EngineDeque:
		return newDequeEngine[K](dir), nil
	case EngineBTree:
		return newBTreeEngine[K](dir), nil
	case EngineSkipList:
		return newSkipListEngine[K](dir), nil
	case EngineHeap:
		return newHeapEngine[K](dir), nil
	default:
		return nil, ErrUnknownEngine
	}
}
