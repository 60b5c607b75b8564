package keeper

import (
	"context"

	"github.com/synthia-chain/synthia/x/smartaccount/types"
)

// InitGenesis initializes the smartaccount module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, account := range genState.Accounts {
		k.SetAccount(ctx, account)
	}
}

// ExportGenesis returns the smartaccount module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{
		Params:   params,
		Accounts: []types.Account{},
	}

	k.IterateAccounts(ctx, func(account types.Account) bool {
		gs.Accounts = append(gs.Accounts, account)
		return false
	})

	return gs
}
