package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// PriceDecimals is the fixed-point scale of the reference price (1e8).
const PriceDecimals = 8

// PricePoint is the single stored reference price.
type PricePoint struct {
	// Price is the reference price scaled by 1e8.
	Price math.Int `json:"price"`
	// LastUpdated is the unix time of the last accepted update.
	LastUpdated int64 `json:"last_updated"`
	// UpdateCount counts accepted updates since genesis.
	UpdateCount uint64 `json:"update_count"`
}

// NewPricePoint creates a price point for an accepted update.
func NewPricePoint(price math.Int, updatedAt time.Time, updateCount uint64) PricePoint {
	return PricePoint{
		Price:       price,
		LastUpdated: updatedAt.Unix(),
		UpdateCount: updateCount,
	}
}

// Validate checks internal consistency of the price point.
func (p PricePoint) Validate() error {
	if p.Price.IsNil() || !p.Price.IsPositive() {
		return fmt.Errorf("price must be positive: %s", p.Price)
	}
	if p.LastUpdated < 0 {
		return fmt.Errorf("last updated cannot be negative")
	}
	return nil
}

// Age returns the elapsed time since the last accepted update.
func (p PricePoint) Age(now time.Time) time.Duration {
	return now.Sub(time.Unix(p.LastUpdated, 0))
}

// IsStale reports whether the price age exceeds maxAge seconds.
func (p PricePoint) IsStale(now time.Time, maxAge uint64) bool {
	return p.Age(now) > time.Duration(maxAge)*time.Second
}

// ChangeBps returns the absolute relative change versus prev in basis points.
func ChangeBps(prev, next math.Int) math.Int {
	if prev.IsZero() {
		return math.ZeroInt()
	}
	diff := next.Sub(prev).Abs()
	return diff.MulRaw(10000).Quo(prev)
}
