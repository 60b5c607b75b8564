package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/sponsor/types"
)

// GetReserve returns the tracked native reserve.
func (k Keeper) GetReserve(ctx context.Context) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.ReserveKey)
	if bz == nil {
		return math.ZeroInt()
	}

	var reserve math.Int
	if err := reserve.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupted sponsor reserve: %w", err))
	}
	return reserve
}

func (k Keeper) setReserve(ctx context.Context, reserve math.Int) {
	if reserve.IsNegative() {
		panic("sponsor reserve cannot go negative")
	}

	store := k.getStore(ctx)
	bz, err := reserve.Marshal()
	if err != nil {
		panic(fmt.Errorf("marshal sponsor reserve: %w", err))
	}
	store.Set(types.ReserveKey, bz)
}

// FundReserve moves native gas coins from the funder into the module account
// and credits the tracked reserve. Returns the new reserve.
func (k Keeper) FundReserve(ctx context.Context, funder sdk.AccAddress, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("funding amount must be positive")
	}

	coins := sdk.NewCoins(sdk.NewCoin(types.NativeDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.ModuleName, coins); err != nil {
		return math.Int{}, fmt.Errorf("FundReserve: bank send: %w", err)
	}

	reserve := k.GetReserve(ctx).Add(amount)
	k.setReserve(ctx, reserve)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeReserveFunded,
			sdk.NewAttribute(types.AttributeKeyFunder, funder.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyReserve, reserve.String()),
		),
	)
	k.metrics.RecordFunding()

	return reserve, nil
}

// GetUsage returns the stored usage record for an account, if any. The record
// may belong to an earlier window; callers roll it with currentUsage.
func (k Keeper) GetUsage(ctx context.Context, account string) (types.Usage, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetUsageKey(account))
	if bz == nil {
		return types.Usage{}, false
	}

	var usage types.Usage
	if err := json.Unmarshal(bz, &usage); err != nil {
		panic(fmt.Errorf("corrupted usage record for %s: %w", account, err))
	}
	return usage, true
}

func (k Keeper) setUsage(ctx context.Context, usage types.Usage) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(usage)
	if err != nil {
		panic(fmt.Errorf("marshal usage record: %w", err))
	}
	store.Set(types.GetUsageKey(usage.Account), bz)
}

// IterateUsages walks all stored usage records.
func (k Keeper) IterateUsages(ctx context.Context, cb func(usage types.Usage) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.UsageKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var usage types.Usage
		if err := json.Unmarshal(iterator.Value(), &usage); err != nil {
			panic(fmt.Errorf("corrupted usage record: %w", err))
		}
		if cb(usage) {
			break
		}
	}
}

// currentUsage returns the account's usage for the window containing now,
// resetting spend when the stored record belongs to an earlier bucket.
func (k Keeper) currentUsage(ctx context.Context, account string, windowSeconds uint64) types.Usage {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	bucket := types.WindowBucket(sdkCtx.BlockTime().Unix(), windowSeconds)

	usage, found := k.GetUsage(ctx, account)
	if !found || usage.WindowStart != bucket {
		return types.Usage{
			Account:     account,
			WindowStart: bucket,
			Spent:       math.ZeroInt(),
		}
	}
	return usage
}

// CanSponsor reports whether the module would cover cost native gas units for
// the account right now. It checks the per-window limit, the reserve, and
// that the account holds enough of a settlement asset.
func (k Keeper) CanSponsor(ctx context.Context, account sdk.AccAddress, cost math.Int) error {
	if cost.IsNil() || !cost.IsPositive() {
		return types.ErrInvalidAmount.Wrap("sponsorship cost must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	usage := k.currentUsage(ctx, account.String(), params.WindowSeconds)
	if usage.Spent.Add(cost).GT(params.PerAccountLimit) {
		return types.ErrLimitExceeded.Wrapf(
			"spent %s + cost %s exceeds window limit %s",
			usage.Spent, cost, params.PerAccountLimit,
		)
	}

	if k.GetReserve(ctx).LT(cost) {
		return types.ErrInsufficientReserve.Wrapf("reserve %s, cost %s", k.GetReserve(ctx), cost)
	}

	if _, _, err := k.pickSettlement(ctx, account, cost, params); err != nil {
		return err
	}
	return nil
}

// pickSettlement chooses the settlement asset: the primary denom when the
// account can cover the converted cost, the secondary otherwise.
func (k Keeper) pickSettlement(ctx context.Context, account sdk.AccAddress, cost math.Int, params types.Params) (string, math.Int, error) {
	primaryDue := types.SettlementAmount(cost, params.PrimaryRate)
	if k.bankKeeper.GetBalance(ctx, account, params.PrimaryDenom).Amount.GTE(primaryDue) {
		return params.PrimaryDenom, primaryDue, nil
	}

	secondaryDue := types.SettlementAmount(cost, params.SecondaryRate)
	if k.bankKeeper.GetBalance(ctx, account, params.SecondaryDenom).Amount.GTE(secondaryDue) {
		return params.SecondaryDenom, secondaryDue, nil
	}

	return "", math.Int{}, types.ErrCannotSettle.Wrapf(
		"account %s holds neither %s %s nor %s %s",
		account, primaryDue, params.PrimaryDenom, secondaryDue, params.SecondaryDenom,
	)
}

// ChargeForSponsorship settles a sponsored gas cost. The account pays the
// converted amount in a settlement asset into the module account, the module
// pays cost native units to the fee collector, and the reserve and the
// account's window usage are debited. Returns the settlement coin collected.
func (k Keeper) ChargeForSponsorship(ctx context.Context, account sdk.AccAddress, cost math.Int) (sdk.Coin, error) {
	if err := k.CanSponsor(ctx, account, cost); err != nil {
		return sdk.Coin{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}

	denom, due, err := k.pickSettlement(ctx, account, cost, params)
	if err != nil {
		return sdk.Coin{}, err
	}

	settlement := sdk.NewCoin(denom, due)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, account, types.ModuleName, sdk.NewCoins(settlement)); err != nil {
		return sdk.Coin{}, fmt.Errorf("ChargeForSponsorship: collect settlement: %w", err)
	}

	gasCoins := sdk.NewCoins(sdk.NewCoin(types.NativeDenom, cost))
	if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, k.feeCollectorName, gasCoins); err != nil {
		return sdk.Coin{}, fmt.Errorf("ChargeForSponsorship: pay fee collector: %w", err)
	}

	k.setReserve(ctx, k.GetReserve(ctx).Sub(cost))

	usage := k.currentUsage(ctx, account.String(), params.WindowSeconds)
	usage.Spent = usage.Spent.Add(cost)
	k.setUsage(ctx, usage)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeGasSponsored,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyCost, cost.String()),
			sdk.NewAttribute(types.AttributeKeyWindowStart, fmt.Sprintf("%d", usage.WindowStart)),
			sdk.NewAttribute(types.AttributeKeySpent, usage.Spent.String()),
		),
		sdk.NewEvent(
			types.EventTypeSponsorSettled,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeySettlement, due.String()),
		),
	})
	k.metrics.RecordSponsorship()

	return settlement, nil
}
