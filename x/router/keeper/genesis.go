package keeper

import (
	"context"

	"github.com/synthia-chain/synthia/x/router/types"
)

// InitGenesis initializes the router module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, denom := range genState.AllowedDenoms {
		if err := k.AllowDenom(ctx, denom); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the router module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	return &types.GenesisState{
		Params:        params,
		AllowedDenoms: k.GetAllowedDenoms(ctx),
	}
}
