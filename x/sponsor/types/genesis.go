package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the sponsor module's genesis state
type GenesisState struct {
	Params  Params   `json:"params"`
	Reserve math.Int `json:"reserve"`
	Usages  []Usage  `json:"usages"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:  DefaultParams(),
		Reserve: math.ZeroInt(),
		Usages:  []Usage{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.Reserve.IsNil() || gs.Reserve.IsNegative() {
		return fmt.Errorf("reserve cannot be negative")
	}
	seen := make(map[string]struct{}, len(gs.Usages))
	for _, usage := range gs.Usages {
		if err := usage.Validate(); err != nil {
			return err
		}
		if _, ok := seen[usage.Account]; ok {
			return fmt.Errorf("duplicate usage record for %s", usage.Account)
		}
		seen[usage.Account] = struct{}{}
	}
	return nil
}
