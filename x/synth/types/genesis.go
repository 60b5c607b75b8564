package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the synth module's genesis state
type GenesisState struct {
	Params    Params     `json:"params"`
	Positions []Position `json:"positions"`
	Paused    bool       `json:"paused"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		Positions: []Position{},
		Paused:    false,
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Positions))
	for _, p := range gs.Positions {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.Owner]; ok {
			return fmt.Errorf("duplicate position for %s", p.Owner)
		}
		seen[p.Owner] = struct{}{}
	}
	return nil
}

// TotalLocked sums the locked collateral across all genesis positions.
func (gs GenesisState) TotalLocked() math.Int {
	total := math.ZeroInt()
	for _, p := range gs.Positions {
		total = total.Add(p.LockedCollateral)
	}
	return total
}
