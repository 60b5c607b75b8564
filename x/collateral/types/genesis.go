package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the collateral module's genesis state
type GenesisState struct {
	Params   Params    `json:"params"`
	Balances []Balance `json:"balances"`
	Paused   bool      `json:"paused"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Balances: []Balance{},
		Paused:   false,
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Balances))
	for _, b := range gs.Balances {
		if err := b.Validate(); err != nil {
			return err
		}
		if _, ok := seen[b.Owner]; ok {
			return fmt.Errorf("duplicate collateral balance for %s", b.Owner)
		}
		seen[b.Owner] = struct{}{}
	}
	return nil
}

// TotalBalance sums all genesis balances.
func (gs GenesisState) TotalBalance() math.Int {
	total := math.ZeroInt()
	for _, b := range gs.Balances {
		total = total.Add(b.Amount)
	}
	return total
}
