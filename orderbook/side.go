package orderbook

import (
	"iter"
	"math"
)

// Side maintains a price-time-priority ladder for one direction. It is a
// thin, validating wrapper around a swappable sideEngine (§4.1); all of the
// interesting bookkeeping lives in the engine implementations
// (side_deque.go and friends).
type Side[K comparable] struct {
	direction Direction
	engine    sideEngine[K]
}

// NewSide builds a Side backed by the canonical slab+deque engine.
func NewSide[K comparable](dir Direction) *Side[K] {
	s, err := NewSideWithEngine[K](dir, EngineDeque)
	if err != nil {
		// EngineDeque is always registered; this would only fail if the
		// package itself were broken.
		panic(err)
	}
	return s
}

// NewSideWithEngine builds a Side backed by the requested engine kind.
func NewSideWithEngine[K comparable](dir Direction, kind EngineKind) (*Side[K], error) {
	eng, err := newEngine[K](kind, dir)
	if err != nil {
		return nil, err
	}
	return &Side[K]{direction: dir, engine: eng}, nil
}

// Direction returns the side's fixed direction.
func (s *Side[K]) Direction() Direction { return s.direction }

// Insert places order under key at its price-time-priority position and
// returns that position (0 = head). Undefined if key is already resting on
// this side (§4.1) — Orderbook enforces the book-wide uniqueness policy;
// Side itself does not check.
func (s *Side[K]) Insert(key K, o Order) int {
	if !validPrice(o.Price) {
		panic("orderbook: order price must be finite and not NaN")
	}
	if !validRestingVolume(o.Volume) {
		panic("orderbook: resting order volume must be positive and not NaN")
	}
	return s.engine.insert(key, o)
}

// Get returns the order resting under key, if any.
func (s *Side[K]) Get(key K) (Order, bool) {
	return s.engine.get(key)
}

// GetByPosition returns the order at rank i (0 = head). Out-of-range access
// is a programmer error and panics.
func (s *Side[K]) GetByPosition(i int) Order {
	return s.engine.getByPosition(i)
}

// KeyAt returns the key resting at rank i. Out-of-range access panics.
func (s *Side[K]) KeyAt(i int) K {
	return s.engine.keyAt(i)
}

// Remove cancels the order resting under key; a no-op if key is absent.
func (s *Side[K]) Remove(key K) {
	s.engine.remove(key)
}

// RemoveFirstN removes the first min(n, Len()) head entries.
func (s *Side[K]) RemoveFirstN(n int) {
	if n < 0 {
		panic("orderbook: n must be non-negative")
	}
	s.engine.removeFirstN(n)
}

// SetHeadVolume rewrites the volume of the order at position 0 in place,
// without reordering the ladder; a no-op if the side is empty. The matcher
// relies on this to leave partially-filled heads resting (§4.3).
func (s *Side[K]) SetHeadVolume(v float64) {
	if math.IsNaN(v) || v < 0 {
		panic("orderbook: head volume must be non-negative and not NaN")
	}
	s.engine.setHeadVolume(v)
}

// Len returns the number of resting orders.
func (s *Side[K]) Len() int { return s.engine.len() }

// IsEmpty reports whether the side holds no resting orders.
func (s *Side[K]) IsEmpty() bool { return s.engine.len() == 0 }

// All iterates the ladder head-to-tail in sorted order. It is a read-only
// view: mutating the side while ranging over All is undefined (§4.1).
func (s *Side[K]) All() iter.Seq2[K, Order] {
	return s.engine.all()
}
