package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	collateraltypes "github.com/synthia-chain/synthia/x/collateral/types"
	"github.com/synthia-chain/synthia/x/synth/types"
)

// Mint mints amount synthetic units against the owner's free ledger
// collateral. The required collateral moves from the ledger into the synth
// module account and stays locked while the position is open. The mint fee is
// withheld from the minted units. Returns the collateral consumed.
func (k Keeper) Mint(ctx context.Context, owner sdk.AccAddress, amount math.Int) (math.Int, error) {
	if k.IsPaused(ctx) {
		return math.Int{}, types.ErrEnginePaused
	}
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("mint amount must be positive, got %s", amount)
	}

	price, _, err := k.oracleKeeper.GetPrice(ctx)
	if err != nil {
		return math.Int{}, types.ErrStaleOraclePrice.Wrap(err.Error())
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}

	required := types.RequiredCollateral(amount, price, params.CollateralRatio)
	if !required.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("amount too small to require collateral")
	}

	ownerStr := owner.String()
	free := k.collateralKeeper.GetUserCollateral(ctx, ownerStr)
	if free.LT(required) {
		return math.Int{}, types.ErrInsufficientCollateral.Wrapf(
			"ledger balance %s, required %s", free, required)
	}

	fee := types.FeePortion(amount, params.MintFeeBps)
	net := amount.Sub(fee)
	if !net.IsPositive() {
		return math.Int{}, types.ErrNothingMintable.Wrapf("amount %s consumed entirely by fee", amount)
	}

	// Lock the collateral in the engine's module account.
	if err := k.collateralKeeper.WithdrawToModule(ctx, types.ModuleName, ownerStr, types.ModuleName, required); err != nil {
		return math.Int{}, fmt.Errorf("Mint: lock collateral: %w", err)
	}
	k.setTotalLockedCollateral(ctx, k.GetTotalLockedCollateral(ctx).Add(required))

	minted := sdk.NewCoins(sdk.NewCoin(types.SyntheticDenom, net))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, minted); err != nil {
		return math.Int{}, fmt.Errorf("Mint: bank mint: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner, minted); err != nil {
		return math.Int{}, fmt.Errorf("Mint: distribute: %w", err)
	}

	position, found := k.GetPosition(ctx, ownerStr)
	if !found {
		position = types.Position{
			Owner:            ownerStr,
			MintedAmount:     math.ZeroInt(),
			LockedCollateral: math.ZeroInt(),
		}
	}
	position.MintedAmount = position.MintedAmount.Add(net)
	position.LockedCollateral = position.LockedCollateral.Add(required)
	k.SetPosition(ctx, position)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSynthMint,
			sdk.NewAttribute(types.AttributeKeyOwner, ownerStr),
			sdk.NewAttribute(types.AttributeKeyMinted, net.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyCollateral, required.String()),
			sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
			sdk.NewAttribute(types.AttributeKeyTotalLocked, k.GetTotalLockedCollateral(ctx).String()),
		),
	)
	k.metrics.RecordMint()

	return required, nil
}

// Redeem burns amount synthetic units and releases the price-implied
// collateral: the net portion is credited back to the owner's ledger balance,
// the redeem fee is swept to the fee collector. Returns the net collateral
// credited.
func (k Keeper) Redeem(ctx context.Context, owner sdk.AccAddress, amount math.Int) (math.Int, error) {
	if k.IsPaused(ctx) {
		return math.Int{}, types.ErrEnginePaused
	}
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("redeem amount must be positive, got %s", amount)
	}

	ownerStr := owner.String()
	position, found := k.GetPosition(ctx, ownerStr)
	if !found {
		return math.Int{}, types.ErrPositionNotFound.Wrapf("owner %s", ownerStr)
	}
	if position.MintedAmount.LT(amount) {
		return math.Int{}, types.ErrInsufficientPosition.Wrapf(
			"position %s, requested %s", position.MintedAmount, amount)
	}

	held := k.bankKeeper.GetBalance(ctx, owner, types.SyntheticDenom)
	if held.Amount.LT(amount) {
		return math.Int{}, types.ErrInsufficientSynthetic.Wrapf(
			"balance %s, requested %s", held.Amount, amount)
	}

	price, _, err := k.oracleKeeper.GetPrice(ctx)
	if err != nil {
		return math.Int{}, types.ErrStaleOraclePrice.Wrap(err.Error())
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}

	// The burned share of the position's own lock is what leaves custody.
	// The payout floats with the current price but never exceeds that share,
	// so the module account always covers the remaining tracked locks.
	owed := types.RequiredCollateral(amount, price, params.CollateralRatio)
	unlock := position.LockedCollateral.Mul(amount).Quo(position.MintedAmount)
	gross := math.MinInt(owed, unlock)
	fee := types.FeePortion(gross, params.RedeemFeeBps)
	netOwed := gross.Sub(fee)
	// Price drift below entry leaves part of the unlocked share unowed; it is
	// swept to the fee collector with the fee.
	protocolCut := unlock.Sub(netOwed)

	// Burn the redeemed synthetic units.
	burned := sdk.NewCoins(sdk.NewCoin(types.SyntheticDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, burned); err != nil {
		return math.Int{}, fmt.Errorf("Redeem: collect synthetic: %w", err)
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, burned); err != nil {
		return math.Int{}, fmt.Errorf("Redeem: bank burn: %w", err)
	}

	// Release the unlocked share: net back to the ledger, the rest to the
	// collector.
	if netOwed.IsPositive() {
		netCoins := sdk.NewCoins(sdk.NewCoin(collateraltypes.DefaultCollateralDenom, netOwed))
		if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, collateraltypes.ModuleName, netCoins); err != nil {
			return math.Int{}, fmt.Errorf("Redeem: unlock collateral: %w", err)
		}
		if err := k.collateralKeeper.Deposit(ctx, types.ModuleName, ownerStr, netOwed); err != nil {
			return math.Int{}, fmt.Errorf("Redeem: credit ledger: %w", err)
		}
	}
	if protocolCut.IsPositive() {
		feeCoins := sdk.NewCoins(sdk.NewCoin(collateraltypes.DefaultCollateralDenom, protocolCut))
		if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, k.feeCollectorName, feeCoins); err != nil {
			return math.Int{}, fmt.Errorf("Redeem: sweep fee: %w", err)
		}
	}

	// Position and global counter move by the identical delta, keeping
	// sum(position locks) == total.
	k.setTotalLockedCollateral(ctx, k.GetTotalLockedCollateral(ctx).Sub(unlock))

	position.MintedAmount = position.MintedAmount.Sub(amount)
	position.LockedCollateral = position.LockedCollateral.Sub(unlock)
	k.SetPosition(ctx, position)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSynthRedeem,
			sdk.NewAttribute(types.AttributeKeyOwner, ownerStr),
			sdk.NewAttribute(types.AttributeKeyBurned, amount.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyCollateral, netOwed.String()),
			sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
			sdk.NewAttribute(types.AttributeKeyTotalLocked, k.GetTotalLockedCollateral(ctx).String()),
		),
	)
	k.metrics.RecordRedeem()

	return netOwed, nil
}

// MaxMintable returns the largest synthetic amount the owner's free ledger
// balance supports at the given price. Advisory only.
func (k Keeper) MaxMintable(ctx context.Context, owner sdk.AccAddress, price math.Int) math.Int {
	if price.IsNil() || !price.IsPositive() {
		return math.ZeroInt()
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt()
	}

	free := k.collateralKeeper.GetUserCollateral(ctx, owner.String())
	if !free.IsPositive() {
		return math.ZeroInt()
	}
	return free.Mul(types.ConversionScale()).Quo(price.Mul(math.NewIntFromUint64(params.CollateralRatio)))
}
