package types

import (
	"cosmossdk.io/math"
)

// conversionScale is 100 × 10^(18+8−6): it folds together the percent
// divisor, the synthetic (1e18) and price (1e8) scales, and the collateral
// (1e6) scale.
var conversionScale = math.NewIntWithDecimal(100, 20)

// ConversionScale returns the mint/redeem fixed-point divisor.
func ConversionScale() math.Int {
	return conversionScale
}

// RequiredCollateral computes the uusdc collateral needed to mint amount
// synthetic units at price (1e8) under ratio (integer percent). Division
// truncates.
func RequiredCollateral(amount, price math.Int, ratio uint64) math.Int {
	return amount.Mul(price).Mul(math.NewIntFromUint64(ratio)).Quo(conversionScale)
}

// FeePortion computes amount × bps / 10000 with truncation.
func FeePortion(amount math.Int, bps uint64) math.Int {
	return amount.Mul(math.NewIntFromUint64(bps)).Quo(math.NewInt(10000))
}

// Position records an owner's outstanding synthetic debt and the collateral
// locked against it.
type Position struct {
	Owner            string   `json:"owner"`
	MintedAmount     math.Int `json:"minted_amount"`
	LockedCollateral math.Int `json:"locked_collateral"`
}

// Validate checks a position record for internal consistency
func (p Position) Validate() error {
	if p.Owner == "" {
		return ErrInvalidAmount.Wrap("position owner cannot be empty")
	}
	if p.MintedAmount.IsNil() || p.MintedAmount.IsNegative() {
		return ErrInvalidAmount.Wrap("minted amount cannot be negative")
	}
	if p.LockedCollateral.IsNil() || p.LockedCollateral.IsNegative() {
		return ErrInvalidAmount.Wrap("locked collateral cannot be negative")
	}
	return nil
}

// RatioBps returns the position's collateralization in basis points at the
// given price: locked value × 10^4 relative to minted value. The second
// return is false when the position has no debt.
func (p Position) RatioBps(price math.Int) (math.Int, bool) {
	if p.MintedAmount.IsNil() || !p.MintedAmount.IsPositive() {
		return math.ZeroInt(), false
	}
	// locked (1e6) × 1e20 × 1e4 / (minted (1e18) × price (1e8))
	num := p.LockedCollateral.Mul(math.NewIntWithDecimal(1, 24))
	den := p.MintedAmount.Mul(price)
	return num.Quo(den), true
}
