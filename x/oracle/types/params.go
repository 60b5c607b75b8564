package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Default oracle parameters.
var (
	// DefaultMinPrice is $0.01 at the 1e8 price scale.
	DefaultMinPrice = math.NewInt(1_000_000)
	// DefaultMaxPrice is $1,000,000 at the 1e8 price scale.
	DefaultMaxPrice = math.NewInt(100_000_000_000_000)
)

const (
	// DefaultMaxPriceAge is the staleness window in seconds.
	DefaultMaxPriceAge uint64 = 3600
	// DefaultMinUpdateInterval throttles operator updates, in seconds.
	DefaultMinUpdateInterval uint64 = 60
	// DefaultMaxPriceChangeBps caps the relative change per update (10%).
	DefaultMaxPriceChangeBps uint64 = 1000
)

// Params defines the oracle module parameters.
type Params struct {
	// Operator is the only address allowed to push prices.
	Operator string `json:"operator"`
	// MinPrice is the lower acceptance bound, scaled 1e8.
	MinPrice math.Int `json:"min_price"`
	// MaxPrice is the upper acceptance bound, scaled 1e8.
	MaxPrice math.Int `json:"max_price"`
	// MaxPriceAge is the staleness window in seconds.
	MaxPriceAge uint64 `json:"max_price_age"`
	// MinUpdateInterval is the minimum seconds between accepted updates.
	MinUpdateInterval uint64 `json:"min_update_interval"`
	// MaxPriceChangeBps is the maximum relative change per update in bps.
	MaxPriceChangeBps uint64 `json:"max_price_change_bps"`
}

// DefaultParams returns a default set of parameters. The operator is unset and
// must be configured at genesis.
func DefaultParams() Params {
	return Params{
		Operator:          "",
		MinPrice:          DefaultMinPrice,
		MaxPrice:          DefaultMaxPrice,
		MaxPriceAge:       DefaultMaxPriceAge,
		MinUpdateInterval: DefaultMinUpdateInterval,
		MaxPriceChangeBps: DefaultMaxPriceChangeBps,
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.MinPrice.IsNil() || !p.MinPrice.IsPositive() {
		return fmt.Errorf("min price must be positive: %s", p.MinPrice)
	}
	if p.MaxPrice.IsNil() || p.MaxPrice.LT(p.MinPrice) {
		return fmt.Errorf("max price must be >= min price")
	}
	if p.MaxPriceAge == 0 {
		return fmt.Errorf("max price age must be positive")
	}
	if p.MaxPriceChangeBps == 0 || p.MaxPriceChangeBps > 10000 {
		return fmt.Errorf("max price change must be in (0, 10000] bps: %d", p.MaxPriceChangeBps)
	}
	return nil
}
