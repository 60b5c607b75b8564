package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
const (
	DefaultWindowSeconds = uint64(3600)

	DefaultPrimaryDenom   = "uusdc"
	DefaultSecondaryDenom = "asynth"
)

// DefaultPerAccountLimit is 1 SYN of gas per window.
var DefaultPerAccountLimit = math.NewInt(1_000_000)

// Params defines the parameters for the sponsor module
type Params struct {
	// WindowSeconds is the usage bucket width
	WindowSeconds uint64 `json:"window_seconds"`
	// PerAccountLimit is the most native gas an account may have sponsored
	// per window
	PerAccountLimit math.Int `json:"per_account_limit"`
	// PrimaryDenom is the preferred settlement asset
	PrimaryDenom string `json:"primary_denom"`
	// SecondaryDenom is the fallback settlement asset
	SecondaryDenom string `json:"secondary_denom"`
	// PrimaryRate is native units owed per primary settlement unit
	PrimaryRate math.LegacyDec `json:"primary_rate"`
	// SecondaryRate is native units owed per secondary settlement unit
	SecondaryRate math.LegacyDec `json:"secondary_rate"`
}

// DefaultParams returns the default sponsor parameters
func DefaultParams() Params {
	return Params{
		WindowSeconds:   DefaultWindowSeconds,
		PerAccountLimit: DefaultPerAccountLimit,
		PrimaryDenom:    DefaultPrimaryDenom,
		SecondaryDenom:  DefaultSecondaryDenom,
		PrimaryRate:     math.LegacyOneDec(),
		SecondaryRate:   math.LegacyNewDecWithPrec(1, 12),
	}
}

// Validate performs basic validation of sponsor parameters
func (p Params) Validate() error {
	if p.WindowSeconds == 0 {
		return fmt.Errorf("window seconds cannot be zero")
	}
	if p.PerAccountLimit.IsNil() || !p.PerAccountLimit.IsPositive() {
		return fmt.Errorf("per-account limit must be positive")
	}
	if err := sdk.ValidateDenom(p.PrimaryDenom); err != nil {
		return fmt.Errorf("invalid primary denom: %w", err)
	}
	if err := sdk.ValidateDenom(p.SecondaryDenom); err != nil {
		return fmt.Errorf("invalid secondary denom: %w", err)
	}
	if p.PrimaryRate.IsNil() || !p.PrimaryRate.IsPositive() {
		return fmt.Errorf("primary rate must be positive")
	}
	if p.SecondaryRate.IsNil() || !p.SecondaryRate.IsPositive() {
		return fmt.Errorf("secondary rate must be positive")
	}
	return nil
}

// SettlementAmount converts a native cost into settlement units at the given
// rate, rounding up so the sponsor never undercharges.
func SettlementAmount(cost math.Int, rate math.LegacyDec) math.Int {
	return math.LegacyNewDecFromInt(cost).Quo(rate).Ceil().TruncateInt()
}
