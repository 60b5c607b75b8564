package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
const (
	DefaultCollateralDenom = "uusdc"
)

// DefaultAuthorizedCallers lists the module names allowed to move ledger
// balances on behalf of users. Callers identify themselves by module name;
// end users go through MsgDeposit/MsgWithdraw instead.
var DefaultAuthorizedCallers = []string{"synth", "router", "smartaccount"}

// Params defines the parameters for the collateral module
type Params struct {
	// Denom is the accepted collateral denom
	Denom string `json:"denom"`
	// AuthorizedCallers are module names permitted to call keeper-level
	// Deposit/Withdraw on behalf of owners
	AuthorizedCallers []string `json:"authorized_callers"`
}

// DefaultParams returns the default collateral parameters
func DefaultParams() Params {
	callers := make([]string, len(DefaultAuthorizedCallers))
	copy(callers, DefaultAuthorizedCallers)
	return Params{
		Denom:             DefaultCollateralDenom,
		AuthorizedCallers: callers,
	}
}

// Validate performs basic validation of collateral parameters
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return fmt.Errorf("invalid collateral denom: %w", err)
	}
	seen := make(map[string]struct{}, len(p.AuthorizedCallers))
	for _, c := range p.AuthorizedCallers {
		if c == "" {
			return fmt.Errorf("authorized caller cannot be empty")
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("duplicate authorized caller: %s", c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// IsAuthorizedCaller reports whether the given module name is in the
// authorized caller set.
func (p Params) IsAuthorizedCaller(caller string) bool {
	for _, c := range p.AuthorizedCallers {
		if c == caller {
			return true
		}
	}
	return false
}
