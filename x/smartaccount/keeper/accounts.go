package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/smartaccount/types"
)

// GetAccount returns the orchestration account for owner, if registered.
func (k Keeper) GetAccount(ctx context.Context, owner string) (types.Account, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetAccountKey(owner))
	if bz == nil {
		return types.Account{}, false
	}
	var account types.Account
	if err := json.Unmarshal(bz, &account); err != nil {
		return types.Account{}, false
	}
	return account, true
}

// SetAccount stores an orchestration account keyed by its owner.
func (k Keeper) SetAccount(ctx context.Context, account types.Account) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(account)
	if err != nil {
		panic(fmt.Errorf("marshal orchestration account: %w", err))
	}
	store.Set(types.GetAccountKey(account.Owner), bz)
}

// IterateAccounts walks every registered account until cb returns true.
func (k Keeper) IterateAccounts(ctx context.Context, cb func(types.Account) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.AccountKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var account types.Account
		if err := json.Unmarshal(iterator.Value(), &account); err != nil {
			continue
		}
		if cb(account) {
			break
		}
	}
}

// RegisterAccount creates a new orchestration account with the given guardian
// set.
func (k Keeper) RegisterAccount(ctx context.Context, owner string, guardians []string) error {
	account := types.Account{
		Owner:       owner,
		Guardians:   guardians,
		Delegations: []types.DelegationGrant{},
	}
	if err := account.Validate(); err != nil {
		return err
	}
	if _, exists := k.GetAccount(ctx, owner); exists {
		return types.ErrAccountExists.Wrapf("owner %s", owner)
	}

	k.SetAccount(ctx, account)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAccountRegistered,
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
		),
	)
	return nil
}

// authorizedAccount loads the account and checks that sender may act for it.
func (k Keeper) authorizedAccount(ctx context.Context, owner, sender string) (types.Account, error) {
	account, found := k.GetAccount(ctx, owner)
	if !found {
		return types.Account{}, types.ErrAccountNotFound.Wrapf("owner %s", owner)
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	if !account.IsAuthorized(sender, now) {
		return types.Account{}, types.ErrUnauthorized.Wrapf("sender %s", sender)
	}
	return account, nil
}
