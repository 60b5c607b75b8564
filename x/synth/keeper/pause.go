package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/synth/types"
)

// IsPaused checks if the engine is currently paused
func (k Keeper) IsPaused(ctx context.Context) bool {
	store := k.getStore(ctx)
	bz := store.Get(types.PausedKey)
	if bz == nil {
		return false
	}
	return bz[0] == 1
}

// SetPaused sets the paused state of the engine
func (k Keeper) SetPaused(ctx context.Context, paused bool) {
	store := k.getStore(ctx)
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if paused {
		store.Set(types.PausedKey, []byte{1})
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeEnginePaused,
				sdk.NewAttribute("paused_at", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
			),
		)
	} else {
		store.Set(types.PausedKey, []byte{0})
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeEngineResumed,
				sdk.NewAttribute("resumed_at", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
			),
		)
	}
}

// PauseEngine halts mint and redeem (governance only)
func (k Keeper) PauseEngine(ctx context.Context) error {
	if k.IsPaused(ctx) {
		return types.ErrEnginePaused.Wrap("engine is already paused")
	}

	k.SetPaused(ctx, true)
	k.Logger(ctx).Info("synth engine paused", "height", sdk.UnwrapSDKContext(ctx).BlockHeight())
	return nil
}

// ResumeEngine resumes mint and redeem (governance only)
func (k Keeper) ResumeEngine(ctx context.Context) error {
	if !k.IsPaused(ctx) {
		return fmt.Errorf("engine is not paused")
	}

	k.SetPaused(ctx, false)
	k.Logger(ctx).Info("synth engine resumed", "height", sdk.UnwrapSDKContext(ctx).BlockHeight())
	return nil
}
