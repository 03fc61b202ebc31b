package orderbook

import "math"

// resolveMatches walks both ladders head-first, crossing asks against bids
// while ask.Price <= bid.Price (§4.3). It never mutates either ladder
// mid-walk: the head orders it reads may have their effective volume
// reduced locally across iterations (a partially-filled head keeps being
// matched against), and only once the walk stops are the consumed heads
// dropped and the surviving partial head's volume written back. This
// mirrors the deferred write-back the Rust source's side.rs describes for
// RemoveFirstN/SetHeadVolume.
func resolveMatches[K comparable](ob *Orderbook[K]) []Trade[K] {
	asks, bids := ob.asks, ob.bids

	var trades []Trade[K]
	askIdx, bidIdx := 0, 0
	askDropped, bidDropped := 0, 0

	var askHead, bidHead Order
	var askKey, bidKey K
	askLoaded, bidLoaded := false, false

	var askResidual, bidResidual *float64

	for {
		if !askLoaded {
			if askIdx >= asks.Len() {
				break
			}
			askHead = asks.GetByPosition(askIdx)
			askKey = asks.KeyAt(askIdx)
			askLoaded = true
		}
		if !bidLoaded {
			if bidIdx >= bids.Len() {
				break
			}
			bidHead = bids.GetByPosition(bidIdx)
			bidKey = bids.KeyAt(bidIdx)
			bidLoaded = true
		}

		if askHead.Price > bidHead.Price {
			break
		}
		if math.IsNaN(askHead.Volume) || math.IsNaN(bidHead.Volume) {
			panic("orderbook: resting order volume is NaN")
		}

		volume := min(askHead.Volume, bidHead.Volume)

		var aggressor Aggressor
		var price float64
		var ts Timestamp
		switch {
		case askHead.Timestamp < bidHead.Timestamp:
			aggressor, ts, price = AggressorBid, bidHead.Timestamp, askHead.Price
		case askHead.Timestamp > bidHead.Timestamp:
			aggressor, ts, price = AggressorAsk, askHead.Timestamp, bidHead.Price
		default:
			aggressor, ts, price = AggressorNone, askHead.Timestamp, (askHead.Price+bidHead.Price)/2
		}

		trades = append(trades, Trade[K]{
			BuyKey:        bidKey,
			SellKey:       askKey,
			Price:         price,
			Volume:        volume,
			Timestamp:     ts,
			AggressorSide: aggressor,
		})

		switch {
		case askHead.Volume == bidHead.Volume:
			askDropped++
			bidDropped++
			askResidual, bidResidual = nil, nil
			askIdx++
			bidIdx++
			askLoaded, bidLoaded = false, false

		case askHead.Volume < bidHead.Volume:
			askDropped++
			askIdx++
			askLoaded = false
			askResidual = nil

			remaining := bidHead.Volume - volume
			if remaining <= 0 {
				panic("orderbook: matcher invariant violated, non-positive residual volume")
			}
			bidHead.Volume = remaining
			bidResidual = &remaining

		default: // askHead.Volume > bidHead.Volume
			bidDropped++
			bidIdx++
			bidLoaded = false
			bidResidual = nil

			remaining := askHead.Volume - volume
			if remaining <= 0 {
				panic("orderbook: matcher invariant violated, non-positive residual volume")
			}
			askHead.Volume = remaining
			askResidual = &remaining
		}
	}

	if askDropped > 0 {
		for i := 0; i < askDropped; i++ {
			delete(ob.keyToSide, asks.KeyAt(i))
		}
		asks.RemoveFirstN(askDropped)
	}
	if bidDropped > 0 {
		for i := 0; i < bidDropped; i++ {
			delete(ob.keyToSide, bids.KeyAt(i))
		}
		bids.RemoveFirstN(bidDropped)
	}
	if askResidual != nil {
		asks.SetHeadVolume(*askResidual)
	}
	if bidResidual != nil {
		bids.SetHeadVolume(*bidResidual)
	}

	if len(trades) > 0 {
		var matched float64
		for _, t := range trades {
			matched += t.Volume
		}
		ob.logger.Debug("resolved matches", "trades", len(trades), "volume", matched)
	}

	return trades
}
