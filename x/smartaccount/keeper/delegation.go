package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/smartaccount/types"
)

// GrantDelegate adds or refreshes a delegation grant expiring
// DelegationDuration after the current block time. Owner-only.
func (k Keeper) GrantDelegate(ctx context.Context, owner, delegate string) (int64, error) {
	account, found := k.GetAccount(ctx, owner)
	if !found {
		return 0, types.ErrAccountNotFound.Wrapf("owner %s", owner)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	expiry := now + int64(params.DelegationDuration)

	replaced := false
	for i, grant := range account.Delegations {
		if grant.Delegate == delegate {
			account.Delegations[i].Expiry = expiry
			replaced = true
			break
		}
	}
	if !replaced {
		account.Delegations = append(account.Delegations, types.DelegationGrant{
			Delegate: delegate,
			Expiry:   expiry,
		})
	}
	k.SetAccount(ctx, account)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDelegateGranted,
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyDelegate, delegate),
			sdk.NewAttribute(types.AttributeKeyExpiry, fmt.Sprintf("%d", expiry)),
		),
	)
	return expiry, nil
}

// RevokeDelegate removes a delegation grant. Owner-only.
func (k Keeper) RevokeDelegate(ctx context.Context, owner, delegate string) error {
	account, found := k.GetAccount(ctx, owner)
	if !found {
		return types.ErrAccountNotFound.Wrapf("owner %s", owner)
	}

	idx := -1
	for i, grant := range account.Delegations {
		if grant.Delegate == delegate {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.ErrDelegateNotFound.Wrapf("delegate %s", delegate)
	}

	account.Delegations = append(account.Delegations[:idx], account.Delegations[idx+1:]...)
	k.SetAccount(ctx, account)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDelegateRevoked,
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyDelegate, delegate),
		),
	)
	return nil
}
