package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/oracle/types"
)

// IsPaused checks if the oracle is currently paused
func (k Keeper) IsPaused(ctx context.Context) bool {
	store := k.getStore(ctx)
	bz := store.Get(types.PausedKey)
	if bz == nil {
		return false
	}
	return bz[0] == 1
}

// SetPaused sets the paused state of the oracle
func (k Keeper) SetPaused(ctx context.Context, paused bool) {
	store := k.getStore(ctx)
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if paused {
		store.Set(types.PausedKey, []byte{1})
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeOraclePaused,
				sdk.NewAttribute("paused_at", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
			),
		)
	} else {
		store.Set(types.PausedKey, []byte{0})
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeOracleResumed,
				sdk.NewAttribute("resumed_at", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
			),
		)
	}
}

// PauseOracle halts price updates (governance only)
func (k Keeper) PauseOracle(ctx context.Context) error {
	if k.IsPaused(ctx) {
		return types.ErrOraclePaused.Wrap("oracle is already paused")
	}

	k.SetPaused(ctx, true)
	k.Logger(ctx).Info("oracle paused", "height", sdk.UnwrapSDKContext(ctx).BlockHeight())
	return nil
}

// ResumeOracle resumes price updates (governance only)
func (k Keeper) ResumeOracle(ctx context.Context) error {
	if !k.IsPaused(ctx) {
		return fmt.Errorf("oracle is not paused")
	}

	k.SetPaused(ctx, false)
	k.Logger(ctx).Info("oracle resumed", "height", sdk.UnwrapSDKContext(ctx).BlockHeight())
	return nil
}
