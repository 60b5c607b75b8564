package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/collateral/types"
)

// RegisterInvariants registers all collateral invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-account-backing", ModuleAccountBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "total-matches-balances", TotalMatchesBalancesInvariant(k))
}

// ModuleAccountBackingInvariant checks that the module account holds at least
// the tracked aggregate of the ledger.
func ModuleAccountBackingInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-account-backing",
				fmt.Sprintf("failed to load params: %v", err)), true
		}

		held := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), params.Denom)
		total := k.GetTotalCollateral(ctx)
		broken := held.Amount.LT(total)

		return sdk.FormatInvariant(types.ModuleName, "module-account-backing",
			fmt.Sprintf("module account holds %s, ledger tracks %s", held.Amount, total)), broken
	}
}

// TotalMatchesBalancesInvariant checks that the tracked aggregate equals the
// sum of all per-owner records.
func TotalMatchesBalancesInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sum := math.ZeroInt()
		k.IterateBalances(ctx, func(balance types.Balance) bool {
			sum = sum.Add(balance.Amount)
			return false
		})

		total := k.GetTotalCollateral(ctx)
		broken := !sum.Equal(total)

		return sdk.FormatInvariant(types.ModuleName, "total-matches-balances",
			fmt.Sprintf("sum of balances %s, tracked total %s", sum, total)), broken
	}
}
