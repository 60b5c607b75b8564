package types

import (
	"fmt"
)

// GenesisState defines the oracle module's genesis state.
type GenesisState struct {
	Params Params      `json:"params"`
	Price  *PricePoint `json:"price,omitempty"`
	Paused bool        `json:"paused"`
}

// DefaultGenesis returns the default genesis state for the oracle module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Price:  nil,
		Paused: false,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid oracle params: %w", err)
	}
	if gs.Price != nil {
		if err := gs.Price.Validate(); err != nil {
			return fmt.Errorf("invalid genesis price: %w", err)
		}
		if gs.Price.Price.LT(gs.Params.MinPrice) || gs.Price.Price.GT(gs.Params.MaxPrice) {
			return fmt.Errorf("genesis price outside configured bounds")
		}
	}
	return nil
}
