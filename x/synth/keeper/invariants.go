package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	collateraltypes "github.com/synthia-chain/synthia/x/collateral/types"
	"github.com/synthia-chain/synthia/x/synth/types"
)

// RegisterInvariants registers all synth invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "locked-collateral-backing", LockedCollateralBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "positions-match-locked", PositionsMatchLockedInvariant(k))
}

// LockedCollateralBackingInvariant checks that the module account holds at
// least the tracked locked collateral.
func LockedCollateralBackingInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		held := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), collateraltypes.DefaultCollateralDenom)
		locked := k.GetTotalLockedCollateral(ctx)
		broken := held.Amount.LT(locked)

		return sdk.FormatInvariant(types.ModuleName, "locked-collateral-backing",
			fmt.Sprintf("module account holds %s, tracked locked %s", held.Amount, locked)), broken
	}
}

// PositionsMatchLockedInvariant checks that the per-position locked amounts
// sum to the tracked aggregate.
func PositionsMatchLockedInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sum := math.ZeroInt()
		k.IteratePositions(ctx, func(position types.Position) bool {
			sum = sum.Add(position.LockedCollateral)
			return false
		})

		locked := k.GetTotalLockedCollateral(ctx)
		broken := !sum.Equal(locked)

		return sdk.FormatInvariant(types.ModuleName, "positions-match-locked",
			fmt.Sprintf("sum of position locks %s, tracked locked %s", sum, locked)), broken
	}
}
