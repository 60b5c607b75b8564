package types

import (
	"fmt"
)

// GenesisState defines the smartaccount module's genesis state
type GenesisState struct {
	Params   Params    `json:"params"`
	Accounts []Account `json:"accounts"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Accounts: []Account{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Accounts))
	for _, account := range gs.Accounts {
		if err := account.Validate(); err != nil {
			return err
		}
		if _, ok := seen[account.Owner]; ok {
			return fmt.Errorf("duplicate orchestration account for %s", account.Owner)
		}
		seen[account.Owner] = struct{}{}
	}
	return nil
}
