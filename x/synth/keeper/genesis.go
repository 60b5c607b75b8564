package keeper

import (
	"context"

	"github.com/synthia-chain/synthia/x/synth/types"
)

// InitGenesis initializes the synth module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, position := range genState.Positions {
		k.SetPosition(ctx, position)
	}
	k.setTotalLockedCollateral(ctx, genState.TotalLocked())

	k.SetPaused(ctx, genState.Paused)
}

// ExportGenesis returns the synth module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{
		Params:    params,
		Positions: []types.Position{},
		Paused:    k.IsPaused(ctx),
	}

	k.IteratePositions(ctx, func(position types.Position) bool {
		gs.Positions = append(gs.Positions, position)
		return false
	})

	return gs
}
