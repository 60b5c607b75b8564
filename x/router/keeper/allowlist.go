package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/router/types"
)

// IsDenomAllowed reports whether denom is on the swap allow-list.
func (k Keeper) IsDenomAllowed(ctx context.Context, denom string) bool {
	store := k.getStore(ctx)
	return store.Has(types.GetAllowedDenomKey(denom))
}

// AllowDenom adds denom to the swap allow-list.
func (k Keeper) AllowDenom(ctx context.Context, denom string) error {
	if err := sdk.ValidateDenom(denom); err != nil {
		return types.ErrInvalidDenom.Wrap(err.Error())
	}

	store := k.getStore(ctx)
	store.Set(types.GetAllowedDenomKey(denom), []byte{0x01})

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDenomAllowed,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
		),
	)
	return nil
}

// RemoveDenom removes denom from the swap allow-list.
func (k Keeper) RemoveDenom(ctx context.Context, denom string) error {
	store := k.getStore(ctx)
	key := types.GetAllowedDenomKey(denom)
	if !store.Has(key) {
		return types.ErrDenomNotAllowed.Wrapf("denom %s", denom)
	}
	store.Delete(key)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDenomRemoved,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
		),
	)
	return nil
}

// GetAllowedDenoms returns the full allow-list.
func (k Keeper) GetAllowedDenoms(ctx context.Context) []string {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.AllowedDenomKeyPrefix)
	defer iterator.Close()

	var denoms []string
	for ; iterator.Valid(); iterator.Next() {
		denoms = append(denoms, string(iterator.Key()[len(types.AllowedDenomKeyPrefix):]))
	}
	return denoms
}
