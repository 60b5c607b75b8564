package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/collateral/types"
)

// IsPaused checks if the ledger is currently paused
func (k Keeper) IsPaused(ctx context.Context) bool {
	store := k.getStore(ctx)
	bz := store.Get(types.PausedKey)
	if bz == nil {
		return false
	}
	return bz[0] == 1
}

// SetPaused sets the paused state of the ledger
func (k Keeper) SetPaused(ctx context.Context, paused bool) {
	store := k.getStore(ctx)
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if paused {
		store.Set(types.PausedKey, []byte{1})
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLedgerPaused,
				sdk.NewAttribute("paused_at", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
			),
		)
	} else {
		store.Set(types.PausedKey, []byte{0})
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLedgerResumed,
				sdk.NewAttribute("resumed_at", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
			),
		)
	}
}

// PauseLedger halts deposits and normal withdrawals (governance only)
func (k Keeper) PauseLedger(ctx context.Context) error {
	if k.IsPaused(ctx) {
		return types.ErrLedgerPaused.Wrap("ledger is already paused")
	}

	k.SetPaused(ctx, true)
	k.Logger(ctx).Info("collateral ledger paused", "height", sdk.UnwrapSDKContext(ctx).BlockHeight())
	return nil
}

// ResumeLedger lifts a pause (governance only)
func (k Keeper) ResumeLedger(ctx context.Context) error {
	if !k.IsPaused(ctx) {
		return fmt.Errorf("ledger is not paused")
	}

	k.SetPaused(ctx, false)
	k.Logger(ctx).Info("collateral ledger resumed", "height", sdk.UnwrapSDKContext(ctx).BlockHeight())
	return nil
}
