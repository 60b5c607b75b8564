package keeper

import (
	"context"

	"github.com/synthia-chain/synthia/x/attest/types"
)

// InitGenesis initializes the attest module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, record := range genState.Attestations {
		k.appendAttestation(ctx, record)
	}
	if genState.HasAccepted {
		k.setLatestAccepted(ctx, genState.LatestAccepted)
	}
	if genState.LastSubmission > 0 {
		k.setLastSubmissionTime(ctx, genState.LastSubmission)
	}
}

// ExportGenesis returns the attest module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{
		Params:       params,
		Attestations: []types.AttestationRecord{},
	}

	k.IterateAttestations(ctx, func(record types.AttestationRecord) bool {
		gs.Attestations = append(gs.Attestations, record)
		return false
	})

	if latest, found := k.GetLatestAccepted(ctx); found {
		gs.LatestAccepted = latest.Index
		gs.HasAccepted = true
	}
	if last, found := k.GetLastSubmissionTime(ctx); found {
		gs.LastSubmission = last
	}

	return gs
}
