package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	synthtypes "github.com/synthia-chain/synthia/x/synth/types"

	"github.com/synthia-chain/synthia/x/attest/types"
)

// solventFloorBps is the claimed ratio below which a submission is rejected
// outright: collateral under the supply's oracle value.
const solventFloorBps = 10000

// deviationToleranceBps bounds how far a claimed total may sit from the
// on-chain observation before a deviation event is emitted.
const deviationToleranceBps = 100

// SubmitAttestation runs intake for a solvency proof. Gating failures
// (prover, interval, timestamp) error without touching the log. A submission
// that passes gating is always appended, rejected or not, and returns nil so
// the write survives; the latest-accepted pointer moves only when the claim
// is sane and the proof clears the wired verifier (or no verifier is wired).
func (k Keeper) SubmitAttestation(
	ctx context.Context,
	prover string,
	proof []byte,
	claimedCollateral, claimedSupply math.Int,
	claimedTimestamp int64,
) (types.AttestationRecord, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.AttestationRecord{}, err
	}

	if params.Prover == "" || prover != params.Prover {
		return types.AttestationRecord{}, types.ErrUnauthorizedProver.Wrapf("submitter %s", prover)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	if last, found := k.GetLastSubmissionTime(ctx); found {
		if elapsed := now - last; elapsed < int64(params.MinProofInterval) {
			return types.AttestationRecord{}, types.ErrTooFrequent.Wrapf(
				"%ds since previous submission, minimum %ds", elapsed, params.MinProofInterval,
			)
		}
	}

	drift := claimedTimestamp - now
	if drift < 0 {
		drift = -drift
	}
	if drift > int64(params.TimestampTolerance) {
		return types.AttestationRecord{}, types.ErrTimestampOutOfRange.Wrapf(
			"claimed %d, block time %d, tolerance %ds", claimedTimestamp, now, params.TimestampTolerance,
		)
	}

	// Gating passed; failed proofs still consume the submission interval.
	k.setLastSubmissionTime(ctx, now)

	record := types.AttestationRecord{
		Prover:            prover,
		ClaimedCollateral: claimedCollateral,
		ClaimedSupply:     claimedSupply,
		Timestamp:         claimedTimestamp,
	}

	price, _, priceStale := k.oracleKeeper.GetPriceUnsafe(ctx)
	ratioBps, ratioKnown := record.RatioBps(price)
	if priceStale {
		ratioKnown = false
	}

	if ratioKnown && ratioBps.LT(math.NewInt(solventFloorBps)) {
		record.Index = k.appendAttestation(ctx, record)
		k.emitRejection(sdkCtx, record.Index, prover, types.ErrInsolventClaim.Error())
		k.metrics.RecordRejection()
		k.Logger(ctx).Error("rejected insolvent attestation",
			"ratio_bps", ratioBps.String(), "price", price.String())
		return record, nil
	}

	if k.verifier != nil {
		if err := k.verifier.VerifyProof(proof, claimedCollateral, claimedSupply, claimedTimestamp); err != nil {
			record.Index = k.appendAttestation(ctx, record)
			k.emitRejection(sdkCtx, record.Index, prover, err.Error())
			k.metrics.RecordRejection()
			k.Logger(ctx).Error("rejected attestation proof", "error", err)
			return record, nil
		}
		record.Verified = true
	}

	record.Accepted = true
	index := k.appendAttestation(ctx, record)
	record.Index = index
	k.setLatestAccepted(ctx, index)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAttestationAccepted,
			sdk.NewAttribute(types.AttributeKeyIndex, fmt.Sprintf("%d", index)),
			sdk.NewAttribute(types.AttributeKeyProver, prover),
			sdk.NewAttribute(types.AttributeKeyClaimedCollateral, claimedCollateral.String()),
			sdk.NewAttribute(types.AttributeKeyClaimedSupply, claimedSupply.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", claimedTimestamp)),
			sdk.NewAttribute(types.AttributeKeyVerified, fmt.Sprintf("%t", record.Verified)),
		),
	)
	k.metrics.RecordAcceptance()

	if ratioKnown && ratioBps.LT(math.NewIntFromUint64(params.MinRatioBps)) {
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSolvencyAlert,
				sdk.NewAttribute(types.AttributeKeyIndex, fmt.Sprintf("%d", index)),
				sdk.NewAttribute(types.AttributeKeyRatioBps, ratioBps.String()),
			),
		)
		k.Logger(ctx).Error("attested collateralization below minimum",
			"ratio_bps", ratioBps.String(), "min_bps", params.MinRatioBps)
	}

	k.crossCheck(sdkCtx, index, claimedCollateral, claimedSupply)

	return record, nil
}

// crossCheck compares claimed totals against on-chain observations. Deviations
// are surfaced in events and logs but never block intake.
func (k Keeper) crossCheck(sdkCtx sdk.Context, index uint64, claimedCollateral, claimedSupply math.Int) {
	observedLocked := k.synthKeeper.GetTotalLockedCollateral(sdkCtx)
	k.emitDeviation(sdkCtx, index, "collateral", observedLocked, claimedCollateral)

	observedSupply := k.bankKeeper.GetSupply(sdkCtx, synthtypes.SyntheticDenom).Amount
	k.emitDeviation(sdkCtx, index, "supply", observedSupply, claimedSupply)
}

func (k Keeper) emitDeviation(sdkCtx sdk.Context, index uint64, field string, observed, claimed math.Int) {
	if !observed.IsPositive() {
		return
	}

	diff := observed.Sub(claimed)
	if diff.IsNegative() {
		diff = diff.Neg()
	}
	deviationBps := diff.MulRaw(10000).Quo(observed)
	if deviationBps.LTE(math.NewInt(deviationToleranceBps)) {
		return
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimDeviation,
			sdk.NewAttribute(types.AttributeKeyIndex, fmt.Sprintf("%d", index)),
			sdk.NewAttribute(types.AttributeKeyField, field),
			sdk.NewAttribute(types.AttributeKeyObservedValue, observed.String()),
			sdk.NewAttribute(types.AttributeKeyClaimedValue, claimed.String()),
			sdk.NewAttribute(types.AttributeKeyRatioBps, deviationBps.String()),
		),
	)
	k.Logger(sdkCtx).Info("attestation deviates from on-chain totals",
		"field", field, "observed", observed.String(), "claimed", claimed.String())
}

func (k Keeper) emitRejection(sdkCtx sdk.Context, index uint64, prover, reason string) {
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAttestationRejected,
			sdk.NewAttribute(types.AttributeKeyIndex, fmt.Sprintf("%d", index)),
			sdk.NewAttribute(types.AttributeKeyProver, prover),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)
}

// IsLatestAttestationValid reports whether an accepted attestation exists and
// is still inside the validity period.
func (k Keeper) IsLatestAttestationValid(ctx context.Context) bool {
	record, found := k.GetLatestAccepted(ctx)
	if !found {
		return false
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return false
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	return now-record.Timestamp <= int64(params.ValidityPeriod)
}
