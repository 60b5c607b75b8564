package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the router module's genesis state
type GenesisState struct {
	Params        Params   `json:"params"`
	AllowedDenoms []string `json:"allowed_denoms"`
}

// DefaultGenesis returns the default genesis state. The collateral denom is
// always swappable.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		AllowedDenoms: []string{CollateralDenom, "usyn"},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.AllowedDenoms))
	for _, denom := range gs.AllowedDenoms {
		if err := sdk.ValidateDenom(denom); err != nil {
			return fmt.Errorf("invalid allowed denom %q: %w", denom, err)
		}
		if _, ok := seen[denom]; ok {
			return fmt.Errorf("duplicate allowed denom: %s", denom)
		}
		seen[denom] = struct{}{}
	}
	return nil
}
