package orderbook

import "cosmossdk.io/log"

// Orderbook owns both ladders and the key→direction index that lets
// arbitrary orders be cancelled by key alone. It routes every operation by
// key and is the only public entry point into matching (§4.2).
type Orderbook[K comparable] struct {
	asks *Side[K]
	bids *Side[K]

	keyToSide map[K]Direction
	engine    EngineKind
	logger    log.Logger
}

// New builds an empty book backed by the canonical slab+deque engine.
func New[K comparable]() *Orderbook[K] {
	ob, err := NewWithEngine[K](EngineDeque)
	if err != nil {
		panic(err)
	}
	return ob
}

// NewWithEngine builds an empty book whose two sides are both backed by the
// requested engine kind.
func NewWithEngine[K comparable](kind EngineKind) (*Orderbook[K], error) {
	asks, err := NewSideWithEngine[K](Ask, kind)
	if err != nil {
		return nil, err
	}
	bids, err := NewSideWithEngine[K](Bid, kind)
	if err != nil {
		return nil, err
	}
	return &Orderbook[K]{
		asks:      asks,
		bids:      bids,
		keyToSide: make(map[K]Direction),
		engine:    kind,
		logger:    log.NewNopLogger(),
	}, nil
}

// WithLogger attaches a structured logger, scoped the way the teacher's
// Keeper scopes its own (x/orderbook/keeper/keeper.go: logger.With("module",
// ...)). A nil logger is replaced with a no-op one; the core never requires
// a logger to function.
func (ob *Orderbook[K]) WithLogger(l log.Logger) *Orderbook[K] {
	if l == nil {
		l = log.NewNopLogger()
	}
	ob.logger = l.With("module", "orderbook")
	return ob
}

// Asks returns the book's ask ladder.
func (ob *Orderbook[K]) Asks() *Side[K] { return ob.asks }

// Bids returns the book's bid ladder.
func (ob *Orderbook[K]) Bids() *Side[K] { return ob.bids }

func (ob *Orderbook[K]) sideFor(dir Direction) *Side[K] {
	if dir == Ask {
		return ob.asks
	}
	return ob.bids
}

// Insert places order on side dir under key and records the key→side
// mapping. It returns ErrKeyAlreadyResting if key is already resting on
// either side (Open Question #1, resolved in SPEC_FULL.md §1): callers
// wanting cancel-replace semantics call Remove first.
func (ob *Orderbook[K]) Insert(key K, dir Direction, o Order) (int, error) {
	if _, resting := ob.keyToSide[key]; resting {
		return 0, ErrKeyAlreadyResting
	}
	pos := ob.sideFor(dir).Insert(key, o)
	ob.keyToSide[key] = dir
	return pos, nil
}

// InsertAsk is a convenience wrapper around Insert(key, Ask, o).
func (ob *Orderbook[K]) InsertAsk(key K, o Order) (int, error) {
	return ob.Insert(key, Ask, o)
}

// InsertBid is a convenience wrapper around Insert(key, Bid, o).
func (ob *Orderbook[K]) InsertBid(key K, o Order) (int, error) {
	return ob.Insert(key, Bid, o)
}

// Get resolves key through the key→side index first, then the relevant
// side — it never searches both sides blindly (§4.2).
func (ob *Orderbook[K]) Get(key K) (Direction, Order, bool) {
	dir, ok := ob.keyToSide[key]
	if !ok {
		return 0, Order{}, false
	}
	o, ok := ob.sideFor(dir).Get(key)
	return dir, o, ok
}

// Remove cancels key's resting order, if any, and drops it from the
// key→side index. A no-op if key is not resting.
func (ob *Orderbook[K]) Remove(key K) {
	dir, ok := ob.keyToSide[key]
	if !ok {
		return
	}
	ob.sideFor(dir).Remove(key)
	delete(ob.keyToSide, key)
}

// ResolveMatches runs the matcher (§4.3) against both ladders and returns
// the trades produced. The book is left non-crossing.
func (ob *Orderbook[K]) ResolveMatches() []Trade[K] {
	return resolveMatches(ob)
}
