package keeper

import (
	"context"

	"github.com/synthia-chain/synthia/x/oracle/types"
)

// InitGenesis initializes the oracle module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	if genState.Price != nil {
		if err := k.setPricePoint(ctx, *genState.Price); err != nil {
			panic(err)
		}
	}

	k.SetPaused(ctx, genState.Paused)
}

// ExportGenesis returns the oracle module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{
		Params: params,
		Paused: k.IsPaused(ctx),
	}

	if point, found := k.GetPricePoint(ctx); found {
		gs.Price = &point
	}

	return gs
}
