package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/smartaccount/types"
)

// ExecuteBatch runs each call against a cache context and commits only the
// writes of calls that succeed. Failures are isolated: a failing call flips
// its own result flag and the siblings still run. The batch as a whole only
// errors on authorization problems, never on call failures.
func (k Keeper) ExecuteBatch(ctx context.Context, sender, accountOwner string, calls []types.BatchCall) ([]bool, error) {
	if _, err := k.authorizedAccount(ctx, accountOwner, sender); err != nil {
		return nil, err
	}

	owner, err := sdk.AccAddressFromBech32(accountOwner)
	if err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	results := make([]bool, len(calls))
	succeeded := 0

	for i, call := range calls {
		if err := k.executeCall(sdkCtx, owner, call); err != nil {
			k.Logger(ctx).Debug("batch call failed",
				"owner", accountOwner, "index", i, "err", err)
			continue
		}
		results[i] = true
		succeeded++
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBatchExecuted,
			sdk.NewAttribute(types.AttributeKeyOwner, accountOwner),
			sdk.NewAttribute(types.AttributeKeySender, sender),
			sdk.NewAttribute(types.AttributeKeyCallCount, fmt.Sprintf("%d", len(calls))),
			sdk.NewAttribute(types.AttributeKeySuccessCount, fmt.Sprintf("%d", succeeded)),
		),
	)

	return results, nil
}

func (k Keeper) executeCall(sdkCtx sdk.Context, owner sdk.AccAddress, call types.BatchCall) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("call panicked: %v", r)
		}
	}()

	if err := call.Validate(); err != nil {
		return err
	}

	target, err := sdk.AccAddressFromBech32(call.Target)
	if err != nil {
		return err
	}

	cacheCtx, write := sdkCtx.CacheContext()

	if !call.Amount.IsZero() {
		if err := k.bankKeeper.SendCoins(cacheCtx, owner, target, call.Amount); err != nil {
			return err
		}
	}

	if handler, ok := k.callHandlers[call.Target]; ok {
		if err := handler(cacheCtx, call.Payload); err != nil {
			return err
		}
	}

	write()
	return nil
}
