package keeper

import (
	"context"

	"github.com/synthia-chain/synthia/x/collateral/types"
)

// InitGenesis initializes the collateral module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, balance := range genState.Balances {
		k.setBalance(ctx, balance.Owner, balance.Amount)
	}
	k.setTotalCollateral(ctx, genState.TotalBalance())

	k.SetPaused(ctx, genState.Paused)
}

// ExportGenesis returns the collateral module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{
		Params:   params,
		Balances: []types.Balance{},
		Paused:   k.IsPaused(ctx),
	}

	k.IterateBalances(ctx, func(balance types.Balance) bool {
		gs.Balances = append(gs.Balances, balance)
		return false
	})

	return gs
}
