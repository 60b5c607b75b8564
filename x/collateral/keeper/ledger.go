package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/collateral/types"
)

// Deposit credits amount to owner's ledger balance. The caller must already
// hold the coins in the collateral module account: module callers move them
// with a bank send before crediting, the user-facing msg server pulls from the
// signer. Caller is a module name checked against the authorized set; the
// module's own name is implicitly authorized for the msg-server path.
func (k Keeper) Deposit(ctx context.Context, caller, owner string, amount math.Int) error {
	if err := k.assertCallerAuthorized(ctx, caller); err != nil {
		return err
	}
	if k.IsPaused(ctx) {
		return types.ErrLedgerPaused
	}
	if owner == "" {
		return types.ErrInvalidAmount.Wrap("owner cannot be empty")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("deposit amount must be positive, got %s", amount)
	}

	balance := k.GetUserCollateral(ctx, owner)
	newBalance := balance.Add(amount)
	k.setBalance(ctx, owner, newBalance)

	total := k.GetTotalCollateral(ctx).Add(amount)
	k.setTotalCollateral(ctx, total)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCollateralDeposit,
			sdk.NewAttribute(types.AttributeKeyCaller, caller),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyNewTotal, total.String()),
		),
	)
	k.metrics.RecordDeposit()

	return nil
}

// Withdraw debits amount from owner's ledger balance and pays it out of the
// module account to recipient.
func (k Keeper) Withdraw(ctx context.Context, caller, owner string, recipient sdk.AccAddress, amount math.Int) error {
	if err := k.assertCallerAuthorized(ctx, caller); err != nil {
		return err
	}
	if k.IsPaused(ctx) {
		return types.ErrLedgerPaused
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("withdraw amount must be positive, got %s", amount)
	}

	balance := k.GetUserCollateral(ctx, owner)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("balance %s, requested %s", balance, amount)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	k.setBalance(ctx, owner, balance.Sub(amount))
	total := k.GetTotalCollateral(ctx).Sub(amount)
	k.setTotalCollateral(ctx, total)

	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return fmt.Errorf("Withdraw: bank send: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCollateralWithdraw,
			sdk.NewAttribute(types.AttributeKeyCaller, caller),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyNewTotal, total.String()),
		),
	)
	k.metrics.RecordWithdraw()

	return nil
}

// WithdrawToModule debits amount from owner's ledger balance and moves it
// from the module account into recipientModule's account. Module recipients
// must take this path rather than Withdraw: a plain send to a module address
// would materialize a base account there and poison later mint/burn calls.
func (k Keeper) WithdrawToModule(ctx context.Context, caller, owner, recipientModule string, amount math.Int) error {
	if err := k.assertCallerAuthorized(ctx, caller); err != nil {
		return err
	}
	if k.IsPaused(ctx) {
		return types.ErrLedgerPaused
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("withdraw amount must be positive, got %s", amount)
	}

	balance := k.GetUserCollateral(ctx, owner)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("balance %s, requested %s", balance, amount)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	k.setBalance(ctx, owner, balance.Sub(amount))
	total := k.GetTotalCollateral(ctx).Sub(amount)
	k.setTotalCollateral(ctx, total)

	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, recipientModule, coins); err != nil {
		return fmt.Errorf("WithdrawToModule: bank send: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCollateralWithdraw,
			sdk.NewAttribute(types.AttributeKeyCaller, caller),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipientModule),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyNewTotal, total.String()),
		),
	)
	k.metrics.RecordWithdraw()

	return nil
}

// EmergencyWithdraw pays out owner's entire recorded balance while the ledger
// is paused. It bypasses the caller gate so stranded users can always exit.
func (k Keeper) EmergencyWithdraw(ctx context.Context, owner sdk.AccAddress) (math.Int, error) {
	if !k.IsPaused(ctx) {
		return math.Int{}, types.ErrUnauthorizedCaller.Wrap("emergency withdraw only available while paused")
	}

	ownerStr := owner.String()
	balance := k.GetUserCollateral(ctx, ownerStr)
	if !balance.IsPositive() {
		return math.Int{}, types.ErrBalanceNotFound.Wrapf("no collateral recorded for %s", ownerStr)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}

	k.deleteBalance(ctx, ownerStr)
	total := k.GetTotalCollateral(ctx).Sub(balance)
	k.setTotalCollateral(ctx, total)

	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, balance))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner, coins); err != nil {
		return math.Int{}, fmt.Errorf("EmergencyWithdraw: bank send: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEmergencyWithdraw,
			sdk.NewAttribute(types.AttributeKeyOwner, ownerStr),
			sdk.NewAttribute(types.AttributeKeyAmount, balance.String()),
			sdk.NewAttribute(types.AttributeKeyNewTotal, total.String()),
		),
	)

	return balance, nil
}

// GetUserCollateral returns owner's recorded ledger balance, zero when no
// record exists.
func (k Keeper) GetUserCollateral(ctx context.Context, owner string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.GetBalanceKey(owner))
	if bz == nil {
		return math.ZeroInt()
	}
	var balance types.Balance
	if err := json.Unmarshal(bz, &balance); err != nil {
		return math.ZeroInt()
	}
	return balance.Amount
}

// GetTotalCollateral returns the tracked aggregate of all ledger balances.
func (k Keeper) GetTotalCollateral(ctx context.Context) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.TotalCollateralKey)
	if bz == nil {
		return math.ZeroInt()
	}
	var total math.Int
	if err := total.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return total
}

// IsSolvent reports whether the module account's bank balance covers the
// tracked aggregate.
func (k Keeper) IsSolvent(ctx context.Context) (bool, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return false, err
	}
	held := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), params.Denom)
	return held.Amount.GTE(k.GetTotalCollateral(ctx)), nil
}

// IterateBalances walks every ledger record until cb returns true.
func (k Keeper) IterateBalances(ctx context.Context, cb func(types.Balance) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.BalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var balance types.Balance
		if err := json.Unmarshal(iterator.Value(), &balance); err != nil {
			continue
		}
		if cb(balance) {
			break
		}
	}
}

func (k Keeper) setBalance(ctx context.Context, owner string, amount math.Int) {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(types.GetBalanceKey(owner))
		return
	}
	bz, err := json.Marshal(types.Balance{Owner: owner, Amount: amount})
	if err != nil {
		panic(fmt.Errorf("marshal collateral balance: %w", err))
	}
	store.Set(types.GetBalanceKey(owner), bz)
}

func (k Keeper) deleteBalance(ctx context.Context, owner string) {
	store := k.getStore(ctx)
	store.Delete(types.GetBalanceKey(owner))
}

func (k Keeper) setTotalCollateral(ctx context.Context, total math.Int) {
	if total.IsNegative() {
		panic(fmt.Sprintf("collateral total went negative: %s", total))
	}
	store := k.getStore(ctx)
	bz, err := total.Marshal()
	if err != nil {
		panic(fmt.Errorf("marshal collateral total: %w", err))
	}
	store.Set(types.TotalCollateralKey, bz)
}

func (k Keeper) assertCallerAuthorized(ctx context.Context, caller string) error {
	if caller == types.ModuleName {
		return nil
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if !params.IsAuthorizedCaller(caller) {
		return types.ErrUnauthorizedCaller.Wrapf("module %s", caller)
	}
	return nil
}
