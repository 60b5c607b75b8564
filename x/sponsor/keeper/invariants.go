package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/synthia-chain/synthia/x/sponsor/types"
)

// RegisterInvariants registers the sponsor module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
}

// ReserveBackingInvariant checks that the module account holds at least the
// tracked native reserve.
func ReserveBackingInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		reserve := k.GetReserve(ctx)
		held := k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), types.NativeDenom).Amount

		broken := held.LT(reserve)
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-backing",
			"module account holds "+held.String()+" "+types.NativeDenom+
				", tracked reserve is "+reserve.String(),
		), broken
	}
}
