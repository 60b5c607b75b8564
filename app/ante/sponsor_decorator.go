package ante

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth/ante"

	smartaccounttypes "github.com/synthia-chain/synthia/x/smartaccount/types"
	sponsorkeeper "github.com/synthia-chain/synthia/x/sponsor/keeper"
)

// SponsorDecorator settles the gas cost of zero-fee orchestration
// transactions against the sponsorship reserve. A transaction qualifies when
// it carries no fee and every message routes to the orchestration account
// module; everything else falls through to the standard fee deduction.
type SponsorDecorator struct {
	sponsorKeeper *sponsorkeeper.Keeper
	deductFee     ante.DeductFeeDecorator
	gasPrice      math.LegacyDec
}

// NewSponsorDecorator wraps the fee deduction decorator with sponsorship.
func NewSponsorDecorator(
	sponsorKeeper *sponsorkeeper.Keeper,
	deductFee ante.DeductFeeDecorator,
	gasPrice math.LegacyDec,
) SponsorDecorator {
	return SponsorDecorator{
		sponsorKeeper: sponsorKeeper,
		deductFee:     deductFee,
		gasPrice:      gasPrice,
	}
}

// AnteHandle implements sdk.AnteDecorator.
func (d SponsorDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	feeTx, ok := tx.(sdk.FeeTx)
	if !ok || simulate || !feeTx.GetFee().IsZero() || !sponsorableMsgs(tx.GetMsgs()) {
		return d.deductFee.AnteHandle(ctx, tx, simulate, next)
	}

	payer := sdk.AccAddress(feeTx.FeePayer())
	cost := d.gasPrice.MulInt64(int64(feeTx.GetGas())).Ceil().TruncateInt()

	if _, err := d.sponsorKeeper.ChargeForSponsorship(ctx, payer, cost); err != nil {
		// Not eligible right now; the standard path reports the missing fee.
		return d.deductFee.AnteHandle(ctx, tx, simulate, next)
	}

	return next(ctx, tx, simulate)
}

// sponsorableMsgs reports whether every message routes to the orchestration
// account module.
func sponsorableMsgs(msgs []sdk.Msg) bool {
	if len(msgs) == 0 {
		return false
	}

	type routed interface{ Route() string }
	for _, msg := range msgs {
		legacy, ok := msg.(routed)
		if !ok || legacy.Route() != smartaccounttypes.RouterKey {
			return false
		}
	}
	return true
}
