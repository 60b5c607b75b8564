package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	collateraltypes "github.com/synthia-chain/synthia/x/collateral/types"
	"github.com/synthia-chain/synthia/x/router/types"
)

// SwapToCollateralAndDeposit swaps input funds already sitting in the router
// module account into collateral and deposits the realized output into the
// ledger credited to beneficiary. The routing fee is taken from the input;
// realized output is the module account's collateral balance delta, so
// slippage is judged on what actually arrived. Returns the realized output.
func (k Keeper) SwapToCollateralAndDeposit(
	ctx context.Context,
	caller string,
	inputDenom string,
	amountIn, minOut math.Int,
	instruction []byte,
	beneficiary sdk.AccAddress,
) (math.Int, error) {
	if err := k.assertOrchestrator(caller); err != nil {
		return math.Int{}, err
	}
	if !k.IsDenomAllowed(ctx, inputDenom) {
		return math.Int{}, types.ErrDenomNotAllowed.Wrapf("denom %s", inputDenom)
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("amount in must be positive, got %s", amountIn)
	}
	if inputDenom == types.CollateralDenom {
		return k.DepositCollateralDirect(ctx, caller, beneficiary, amountIn)
	}
	if k.aggregator == nil {
		return math.Int{}, types.ErrAggregatorNotSet
	}

	var realized math.Int
	err := k.withReentrancyGuard(ctx, beneficiary.String(), "swap_in", func() error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		fee := amountIn.Mul(math.NewIntFromUint64(params.RouterFeeBps)).Quo(math.NewInt(10000))
		net := amountIn.Sub(fee)
		if !net.IsPositive() {
			return types.ErrInvalidAmount.Wrapf("amount %s consumed entirely by fee", amountIn)
		}
		if fee.IsPositive() {
			feeCoins := sdk.NewCoins(sdk.NewCoin(inputDenom, fee))
			if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, k.feeCollectorName, feeCoins); err != nil {
				return fmt.Errorf("fee sweep: %w", err)
			}
		}

		before := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), types.CollateralDenom).Amount

		input := sdk.NewCoin(inputDenom, net)
		if err := k.aggregator.Swap(ctx, input, types.CollateralDenom, instruction); err != nil {
			return types.ErrAggregatorFailed.Wrap(err.Error())
		}

		after := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), types.CollateralDenom).Amount
		delta := after.Sub(before)
		if delta.LT(minOut) {
			return types.ErrSlippageExceeded.Wrapf("realized %s, minimum %s", delta, minOut)
		}

		outCoins := sdk.NewCoins(sdk.NewCoin(types.CollateralDenom, delta))
		if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, collateraltypes.ModuleName, outCoins); err != nil {
			return fmt.Errorf("ledger transfer: %w", err)
		}
		if err := k.collateralKeeper.Deposit(ctx, types.ModuleName, beneficiary.String(), delta); err != nil {
			return fmt.Errorf("ledger credit: %w", err)
		}

		realized = delta

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSwapIn,
				sdk.NewAttribute(types.AttributeKeyBeneficiary, beneficiary.String()),
				sdk.NewAttribute(types.AttributeKeyInputDenom, inputDenom),
				sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
				sdk.NewAttribute(types.AttributeKeyAmountOut, delta.String()),
				sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}
	return realized, nil
}

// SwapCollateralToAsset withdraws collateral from the ledger balance of from
// and swaps it into outputDenom, sending the realized output to recipient.
// When outputDenom is the collateral denom the transfer is a fee-free
// pass-through with no venue call. Returns the realized output.
func (k Keeper) SwapCollateralToAsset(
	ctx context.Context,
	caller string,
	from sdk.AccAddress,
	outputDenom string,
	collateralIn, minOut math.Int,
	instruction []byte,
	recipient sdk.AccAddress,
) (math.Int, error) {
	if err := k.assertOrchestrator(caller); err != nil {
		return math.Int{}, err
	}
	if !k.IsDenomAllowed(ctx, outputDenom) {
		return math.Int{}, types.ErrDenomNotAllowed.Wrapf("denom %s", outputDenom)
	}
	if collateralIn.IsNil() || !collateralIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("collateral in must be positive, got %s", collateralIn)
	}

	var realized math.Int
	err := k.withReentrancyGuard(ctx, from.String(), "swap_out", func() error {
		if err := k.collateralKeeper.WithdrawToModule(ctx, types.ModuleName, from.String(), types.ModuleName, collateralIn); err != nil {
			return fmt.Errorf("ledger debit: %w", err)
		}

		// Pass-through: collateral out is just a transfer.
		if outputDenom == types.CollateralDenom {
			if collateralIn.LT(minOut) {
				return types.ErrSlippageExceeded.Wrapf("realized %s, minimum %s", collateralIn, minOut)
			}
			coins := sdk.NewCoins(sdk.NewCoin(types.CollateralDenom, collateralIn))
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
				return fmt.Errorf("payout: %w", err)
			}
			realized = collateralIn
			return nil
		}

		if k.aggregator == nil {
			return types.ErrAggregatorNotSet
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		fee := collateralIn.Mul(math.NewIntFromUint64(params.RouterFeeBps)).Quo(math.NewInt(10000))
		net := collateralIn.Sub(fee)
		if !net.IsPositive() {
			return types.ErrInvalidAmount.Wrapf("amount %s consumed entirely by fee", collateralIn)
		}
		if fee.IsPositive() {
			feeCoins := sdk.NewCoins(sdk.NewCoin(types.CollateralDenom, fee))
			if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, k.feeCollectorName, feeCoins); err != nil {
				return fmt.Errorf("fee sweep: %w", err)
			}
		}

		before := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), outputDenom).Amount

		input := sdk.NewCoin(types.CollateralDenom, net)
		if err := k.aggregator.Swap(ctx, input, outputDenom, instruction); err != nil {
			return types.ErrAggregatorFailed.Wrap(err.Error())
		}

		after := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), outputDenom).Amount
		delta := after.Sub(before)
		if delta.LT(minOut) {
			return types.ErrSlippageExceeded.Wrapf("realized %s, minimum %s", delta, minOut)
		}

		coins := sdk.NewCoins(sdk.NewCoin(outputDenom, delta))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
			return fmt.Errorf("payout: %w", err)
		}

		realized = delta

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSwapOut,
				sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
				sdk.NewAttribute(types.AttributeKeyOutputDenom, outputDenom),
				sdk.NewAttribute(types.AttributeKeyAmountIn, collateralIn.String()),
				sdk.NewAttribute(types.AttributeKeyAmountOut, delta.String()),
				sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}
	return realized, nil
}

// DepositCollateralDirect credits collateral already held by the router
// module account into the ledger, minus the routing fee. Used when the input
// asset needs no swap.
func (k Keeper) DepositCollateralDirect(
	ctx context.Context,
	caller string,
	beneficiary sdk.AccAddress,
	amount math.Int,
) (math.Int, error) {
	if err := k.assertOrchestrator(caller); err != nil {
		return math.Int{}, err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("amount must be positive, got %s", amount)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}

	fee := amount.Mul(math.NewIntFromUint64(params.RouterFeeBps)).Quo(math.NewInt(10000))
	net := amount.Sub(fee)
	if !net.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("amount %s consumed entirely by fee", amount)
	}

	if fee.IsPositive() {
		feeCoins := sdk.NewCoins(sdk.NewCoin(types.CollateralDenom, fee))
		if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, k.feeCollectorName, feeCoins); err != nil {
			return math.Int{}, fmt.Errorf("DepositCollateralDirect: fee sweep: %w", err)
		}
	}

	netCoins := sdk.NewCoins(sdk.NewCoin(types.CollateralDenom, net))
	if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, collateraltypes.ModuleName, netCoins); err != nil {
		return math.Int{}, fmt.Errorf("DepositCollateralDirect: ledger transfer: %w", err)
	}
	if err := k.collateralKeeper.Deposit(ctx, types.ModuleName, beneficiary.String(), net); err != nil {
		return math.Int{}, fmt.Errorf("DepositCollateralDirect: ledger credit: %w", err)
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDirectDeposit,
			sdk.NewAttribute(types.AttributeKeyBeneficiary, beneficiary.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amount.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, net.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
		),
	)

	return net, nil
}

func (k Keeper) assertOrchestrator(caller string) error {
	if caller != types.OrchestratorCaller {
		return types.ErrUnauthorizedCaller.Wrapf("module %s", caller)
	}
	return nil
}
