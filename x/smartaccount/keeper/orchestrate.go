package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	routertypes "github.com/synthia-chain/synthia/x/router/types"
	"github.com/synthia-chain/synthia/x/smartaccount/types"
)

// SwapAndMint swaps an input asset into collateral, deposits the proceeds
// into the owner's ledger balance and mints as much of the requested
// synthetic amount as that balance supports. The mint sizing estimate uses
// the unadjusted stored price; the mint itself re-reads the price strictly.
// Returns the realized collateral and the gross minted amount.
func (k Keeper) SwapAndMint(
	ctx context.Context,
	sender, accountOwner string,
	inputDenom string,
	amountIn, minCollateralOut, requestedSynthOut math.Int,
	instruction []byte,
) (math.Int, math.Int, error) {
	if _, err := k.authorizedAccount(ctx, accountOwner, sender); err != nil {
		return math.Int{}, math.Int{}, err
	}

	owner, err := sdk.AccAddressFromBech32(accountOwner)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	// Stage the input at the router.
	input := sdk.NewCoins(sdk.NewCoin(inputDenom, amountIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, routertypes.ModuleName, input); err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("SwapAndMint: stage input: %w", err)
	}

	collateralOut, err := k.routerKeeper.SwapToCollateralAndDeposit(
		ctx, types.ModuleName, inputDenom, amountIn, minCollateralOut, instruction, owner)
	if err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("SwapAndMint: swap: %w", err)
	}

	price, _, _ := k.oracleKeeper.GetPriceUnsafe(ctx)
	toMint := math.MinInt(requestedSynthOut, k.synthKeeper.MaxMintable(ctx, owner, price))
	if !toMint.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrNothingMintable
	}

	if _, err := k.synthKeeper.Mint(ctx, owner, toMint); err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("SwapAndMint: mint: %w", err)
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwapAndMint,
			sdk.NewAttribute(types.AttributeKeyOwner, accountOwner),
			sdk.NewAttribute(types.AttributeKeySender, sender),
			sdk.NewAttribute(types.AttributeKeyCollateralOut, collateralOut.String()),
			sdk.NewAttribute(types.AttributeKeyMinted, toMint.String()),
		),
	)

	return collateralOut, toMint, nil
}

// RedeemAndSwap burns synthetic units, pulls the redeemed net collateral out
// of the ledger and swaps it into the requested asset for the owner.
func (k Keeper) RedeemAndSwap(
	ctx context.Context,
	sender, accountOwner string,
	burnAmount math.Int,
	outputDenom string,
	minOut math.Int,
	instruction []byte,
) (math.Int, error) {
	if _, err := k.authorizedAccount(ctx, accountOwner, sender); err != nil {
		return math.Int{}, err
	}

	owner, err := sdk.AccAddressFromBech32(accountOwner)
	if err != nil {
		return math.Int{}, err
	}

	netCollateral, err := k.synthKeeper.Redeem(ctx, owner, burnAmount)
	if err != nil {
		return math.Int{}, fmt.Errorf("RedeemAndSwap: redeem: %w", err)
	}
	if !netCollateral.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("redeem produced no collateral")
	}

	// The redeemed credit leaves the ledger through the router, which
	// debits the owner's balance before swapping.
	assetOut, err := k.routerKeeper.SwapCollateralToAsset(
		ctx, types.ModuleName, owner, outputDenom, netCollateral, minOut, instruction, owner)
	if err != nil {
		return math.Int{}, fmt.Errorf("RedeemAndSwap: swap: %w", err)
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRedeemAndSwap,
			sdk.NewAttribute(types.AttributeKeyOwner, accountOwner),
			sdk.NewAttribute(types.AttributeKeySender, sender),
			sdk.NewAttribute(types.AttributeKeyBurned, burnAmount.String()),
			sdk.NewAttribute(types.AttributeKeyAssetOut, assetOut.String()),
		),
	)

	return assetOut, nil
}
