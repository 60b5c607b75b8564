package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/synth/types"
)

// GetSystemCollateralizationRatio returns the system-wide collateralization
// in basis points: locked collateral value × 10000 over the synthetic supply
// value at the current price. The second return is false when there is no
// synthetic supply or no usable price.
func (k Keeper) GetSystemCollateralizationRatio(ctx context.Context) (math.Int, bool) {
	supply := k.bankKeeper.GetSupply(ctx, types.SyntheticDenom)
	if !supply.Amount.IsPositive() {
		return math.ZeroInt(), false
	}

	price, _, stale := k.oracleKeeper.GetPriceUnsafe(ctx)
	if stale || price.IsNil() || !price.IsPositive() {
		return math.ZeroInt(), false
	}

	// locked (1e6) × 10000 × 1e20 / (supply (1e18) × price (1e8))
	locked := k.GetTotalLockedCollateral(ctx)
	num := locked.Mul(math.NewIntWithDecimal(10000, 20))
	den := supply.Amount.Mul(price)
	return num.Quo(den), true
}

// GetUserCollateralizationRatio returns the owner's position ratio in basis
// points at the current price. The second return is false when the owner has
// no open position or no usable price exists.
func (k Keeper) GetUserCollateralizationRatio(ctx context.Context, owner sdk.AccAddress) (math.Int, bool) {
	position, found := k.GetPosition(ctx, owner.String())
	if !found {
		return math.ZeroInt(), false
	}

	price, _, stale := k.oracleKeeper.GetPriceUnsafe(ctx)
	if stale || price.IsNil() || !price.IsPositive() {
		return math.ZeroInt(), false
	}

	return position.RatioBps(price)
}

// CanLiquidate reports whether the owner's position sits below the
// liquidation threshold. Execution of liquidations is out of scope; this is
// the read-only predicate.
func (k Keeper) CanLiquidate(ctx context.Context, owner sdk.AccAddress) (bool, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return false, err
	}

	ratio, ok := k.GetUserCollateralizationRatio(ctx, owner)
	if !ok {
		return false, nil
	}
	return ratio.LT(math.NewIntFromUint64(params.LiquidationThresholdBps)), nil
}
