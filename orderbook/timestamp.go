package orderbook

// Timestamp is an opaque monotonic integer supplied by the caller. The core
// never reads the wall clock; it only ever compares timestamps it was
// handed at insertion time.
type Timestamp int64
