package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/oracle/types"
)

// setPricePoint persists the current reference price point.
func (k Keeper) setPricePoint(ctx context.Context, point types.PricePoint) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(point)
	if err != nil {
		return fmt.Errorf("setPricePoint: marshal: %w", err)
	}
	store.Set(types.PricePointKey, bz)
	return nil
}

// getPricePoint loads the stored reference price point.
func (k Keeper) getPricePoint(ctx context.Context) (types.PricePoint, bool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PricePointKey)
	if bz == nil {
		return types.PricePoint{}, false, nil
	}

	var point types.PricePoint
	if err := json.Unmarshal(bz, &point); err != nil {
		return types.PricePoint{}, false, fmt.Errorf("getPricePoint: unmarshal: %w", err)
	}
	return point, true, nil
}

// PushPrice records a new reference price submitted by the operator.
// Validates bounds, update frequency and relative change against the stored
// point before accepting. The rate-of-change check is skipped on the very
// first update.
func (k Keeper) PushPrice(ctx context.Context, operator sdk.AccAddress, newPrice math.Int) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if k.IsPaused(ctx) {
		return 0, types.ErrOraclePaused
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	if params.Operator == "" || operator.String() != params.Operator {
		return 0, types.ErrNotOperator.Wrapf("got %s", operator)
	}

	if newPrice.IsNil() || !newPrice.IsPositive() {
		return 0, types.ErrInvalidPrice.Wrap("price must be positive")
	}

	if newPrice.LT(params.MinPrice) || newPrice.GT(params.MaxPrice) {
		k.rejectPrice(sdkCtx, newPrice, "out_of_bounds")
		return 0, types.ErrPriceOutOfBounds.Wrapf(
			"price %s outside [%s, %s]", newPrice, params.MinPrice, params.MaxPrice,
		)
	}

	now := sdkCtx.BlockTime()

	prev, found, err := k.getPricePoint(ctx)
	if err != nil {
		return 0, err
	}

	prevPrice := math.ZeroInt()
	if found {
		prevPrice = prev.Price
		elapsed := now.Unix() - prev.LastUpdated
		if elapsed < int64(params.MinUpdateInterval) {
			k.rejectPrice(sdkCtx, newPrice, "too_frequent")
			return 0, types.ErrUpdateTooFrequent.Wrapf(
				"only %ds since previous update, minimum is %ds", elapsed, params.MinUpdateInterval,
			)
		}

		change := types.ChangeBps(prevPrice, newPrice)
		if change.GT(math.NewIntFromUint64(params.MaxPriceChangeBps)) {
			k.rejectPrice(sdkCtx, newPrice, "excessive_change")
			return 0, types.ErrExcessiveChange.Wrapf(
				"change of %s bps exceeds maximum %d bps", change, params.MaxPriceChangeBps,
			)
		}
	}

	point := types.NewPricePoint(newPrice, now, prev.UpdateCount+1)
	if err := k.setPricePoint(ctx, point); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOraclePriceUpdate,
			sdk.NewAttribute(types.AttributeKeyOperator, operator.String()),
			sdk.NewAttribute(types.AttributeKeyPrice, newPrice.String()),
			sdk.NewAttribute(types.AttributeKeyPreviousPrice, prevPrice.String()),
			sdk.NewAttribute(types.AttributeKeyUpdateCount, fmt.Sprintf("%d", point.UpdateCount)),
		),
	)

	if k.metrics != nil {
		k.metrics.PriceUpdates.Inc()
		k.metrics.ReferencePrice.Set(float64(newPrice.Int64()) / 1e8)
	}

	return point.UpdateCount, nil
}

// rejectPrice emits a rejection event and bumps the rejection counter.
func (k Keeper) rejectPrice(sdkCtx sdk.Context, price math.Int, reason string) {
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOraclePriceRejected,
			sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)

	if k.metrics != nil {
		k.metrics.PriceRejections.With(map[string]string{"reason": reason}).Inc()
	}
}

// GetPrice returns the current reference price and its last-update time.
// Errors when no price has been pushed yet or the stored price is older than
// the configured maximum age. Money-moving paths must use this accessor.
func (k Keeper) GetPrice(ctx context.Context) (math.Int, int64, error) {
	point, found, err := k.getPricePoint(ctx)
	if err != nil {
		return math.ZeroInt(), 0, err
	}
	if !found {
		return math.ZeroInt(), 0, types.ErrPriceNotFound
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), 0, err
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime()
	if point.IsStale(now, params.MaxPriceAge) {
		return math.ZeroInt(), 0, types.ErrStalePrice.Wrapf(
			"price age %s exceeds maximum %ds", point.Age(now), params.MaxPriceAge,
		)
	}

	return point.Price, point.LastUpdated, nil
}

// GetPriceUnsafe returns the stored price regardless of age together with an
// explicit staleness flag. Callers that must degrade gracefully rather than
// abort (advisory estimators) use this variant.
func (k Keeper) GetPriceUnsafe(ctx context.Context) (math.Int, int64, bool) {
	point, found, err := k.getPricePoint(ctx)
	if err != nil || !found {
		return math.ZeroInt(), 0, true
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return point.Price, point.LastUpdated, true
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime()
	return point.Price, point.LastUpdated, point.IsStale(now, params.MaxPriceAge)
}

// GetPricePoint returns the full stored point, for queries and genesis export.
func (k Keeper) GetPricePoint(ctx context.Context) (types.PricePoint, bool) {
	point, found, err := k.getPricePoint(ctx)
	if err != nil {
		return types.PricePoint{}, false
	}
	return point, found
}
