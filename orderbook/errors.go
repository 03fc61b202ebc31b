package orderbook

import (
	"cosmossdk.io/errors"
)

// Caller-contract errors (§7): unlike programmer errors these are not
// panics, since a caller can reasonably hit them in the course of normal
// operation and recover by choosing a different key or engine.
var (
	// ErrKeyAlreadyResting is returned by Insert when the key is already
	// resting on either side of the book. The source overwrites the side
	// mapping and double-inserts; this implementation rejects instead
	// (Open Question #1, resolved in SPEC_FULL.md §1). Callers that want
	// cancel-replace semantics call Remove then Insert.
	ErrKeyAlreadyResting = errors.Register("orderbook", 1, "key already resting on a side of the book")

	// ErrUnknownEngine is returned by NewSideWithEngine/NewWithEngine when asked for
	// an EngineKind this build does not implement.
	ErrUnknownEngine = errors.Register("orderbook", 2, "unknown side engine")
)
