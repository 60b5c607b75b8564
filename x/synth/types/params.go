package types

import (
	"fmt"
)

// Default parameter values
const (
	DefaultCollateralRatio         = uint64(150)
	DefaultMintFeeBps              = uint64(25)
	DefaultRedeemFeeBps            = uint64(25)
	DefaultLiquidationThresholdBps = uint64(12000)

	// MaxFeeBps caps mint and redeem fees at 10%.
	MaxFeeBps = uint64(1000)
)

// Params defines the parameters for the synth module
type Params struct {
	// CollateralRatio is the required over-collateralization as an integer
	// percent (150 = 150%)
	CollateralRatio uint64 `json:"collateral_ratio"`
	// MintFeeBps is the fee taken from minted synthetic units, in basis points
	MintFeeBps uint64 `json:"mint_fee_bps"`
	// RedeemFeeBps is the fee retained from redeemed collateral, in basis points
	RedeemFeeBps uint64 `json:"redeem_fee_bps"`
	// LiquidationThresholdBps is the per-user ratio below which a position
	// becomes liquidatable (12000 = 120%)
	LiquidationThresholdBps uint64 `json:"liquidation_threshold_bps"`
}

// DefaultParams returns the default synth parameters
func DefaultParams() Params {
	return Params{
		CollateralRatio:         DefaultCollateralRatio,
		MintFeeBps:              DefaultMintFeeBps,
		RedeemFeeBps:            DefaultRedeemFeeBps,
		LiquidationThresholdBps: DefaultLiquidationThresholdBps,
	}
}

// Validate performs basic validation of synth parameters
func (p Params) Validate() error {
	if p.CollateralRatio < 100 {
		return fmt.Errorf("collateral ratio must be at least 100 percent, got %d", p.CollateralRatio)
	}
	if p.MintFeeBps > MaxFeeBps {
		return fmt.Errorf("mint fee %d bps exceeds maximum %d", p.MintFeeBps, MaxFeeBps)
	}
	if p.RedeemFeeBps > MaxFeeBps {
		return fmt.Errorf("redeem fee %d bps exceeds maximum %d", p.RedeemFeeBps, MaxFeeBps)
	}
	if p.LiquidationThresholdBps == 0 {
		return fmt.Errorf("liquidation threshold cannot be zero")
	}
	if p.LiquidationThresholdBps >= p.CollateralRatio*100 {
		return fmt.Errorf("liquidation threshold %d bps must be below the collateral ratio %d bps",
			p.LiquidationThresholdBps, p.CollateralRatio*100)
	}
	return nil
}
