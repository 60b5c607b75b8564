package keeper

import (
	"context"

	"github.com/synthia-chain/synthia/x/sponsor/types"
)

// InitGenesis initializes the sponsor module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	k.setReserve(ctx, genState.Reserve)
	for _, usage := range genState.Usages {
		k.setUsage(ctx, usage)
	}
}

// ExportGenesis returns the sponsor module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{
		Params:  params,
		Reserve: k.GetReserve(ctx),
		Usages:  []types.Usage{},
	}

	k.IterateUsages(ctx, func(usage types.Usage) bool {
		gs.Usages = append(gs.Usages, usage)
		return false
	})

	return gs
}
