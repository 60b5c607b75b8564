package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/synthia-chain/synthia/testutil/keeper"
	"github.com/synthia-chain/synthia/x/attest/types"
	collateralkeeper "github.com/synthia-chain/synthia/x/collateral/keeper"
	collateraltypes "github.com/synthia-chain/synthia/x/collateral/types"
	oracletypes "github.com/synthia-chain/synthia/x/oracle/types"
)

var (
	attProver   = sdk.AccAddress([]byte("attestation_prover_1"))
	attOperator = sdk.AccAddress([]byte("att_price_operator_1"))
)

// attPrice is $150 at the 1e8 price scale.
var attPrice = math.NewInt(15_000_000_000)

// oneSynth is one synthetic unit at the 1e18 scale.
var oneSynth = math.NewIntWithDecimal(1, 18)

// setupAttest authorizes the prover and pushes a fresh price. No proof
// verifier is wired, so accepted submissions stay unverified.
func setupAttest(t *testing.T) *keepertest.TestEnv {
	env := keepertest.NewTestEnv(t)

	attestParams := types.DefaultParams()
	attestParams.Prover = attProver.String()
	require.NoError(t, env.Attest.SetParams(env.Ctx, attestParams))

	oracleParams := oracletypes.DefaultParams()
	oracleParams.Operator = attOperator.String()
	require.NoError(t, env.Oracle.SetParams(env.Ctx, oracleParams))
	_, err := env.Oracle.PushPrice(env.Ctx, attOperator, attPrice)
	require.NoError(t, err)

	return env
}

func countEvents(events sdk.Events, eventType string) int {
	n := 0
	for _, event := range events {
		if event.Type == eventType {
			n++
		}
	}
	return n
}

func TestSubmitAccepted(t *testing.T) {
	env := setupAttest(t)
	now := env.Ctx.BlockTime().Unix()

	// 225,000,000 uusdc against 1e18 supply at $150 is exactly 150%.
	record, err := env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), []byte("proof"),
		math.NewInt(225_000_000), oneSynth, now,
	)
	require.NoError(t, err)
	require.True(t, record.Accepted)
	require.False(t, record.Verified)
	require.Equal(t, uint64(0), record.Index)

	require.Equal(t, uint64(1), env.Attest.GetAttestationCount(env.Ctx))
	latest, found := env.Attest.GetLatestAccepted(env.Ctx)
	require.True(t, found)
	require.Equal(t, record, latest)
	require.True(t, env.Attest.IsLatestAttestationValid(env.Ctx))

	require.Equal(t, 0, countEvents(env.Ctx.EventManager().Events(), types.EventTypeSolvencyAlert))
}

func TestProverGate(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	now := env.Ctx.BlockTime().Unix()

	// The default empty prover disables intake for everyone.
	_, err := env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), nil, math.NewInt(1), oneSynth, now)
	require.ErrorIs(t, err, types.ErrUnauthorizedProver)

	env = setupAttest(t)
	_, err = env.Attest.SubmitAttestation(
		env.Ctx, attOperator.String(), nil, math.NewInt(1), oneSynth, now)
	require.ErrorIs(t, err, types.ErrUnauthorizedProver)
	require.Equal(t, uint64(0), env.Attest.GetAttestationCount(env.Ctx))
}

func TestSubmissionInterval(t *testing.T) {
	env := setupAttest(t)
	now := env.Ctx.BlockTime().Unix()

	_, err := env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), nil, math.NewInt(225_000_000), oneSynth, now)
	require.NoError(t, err)

	_, err = env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), nil, math.NewInt(225_000_000), oneSynth, now)
	require.ErrorIs(t, err, types.ErrTooFrequent)
	require.Equal(t, uint64(1), env.Attest.GetAttestationCount(env.Ctx))

	env.AdvanceTime(time.Duration(types.DefaultMinProofInterval) * time.Second)
	_, err = env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), nil, math.NewInt(225_000_000), oneSynth, env.Ctx.BlockTime().Unix())
	require.NoError(t, err)
	require.Equal(t, uint64(2), env.Attest.GetAttestationCount(env.Ctx))
}

func TestTimestampTolerance(t *testing.T) {
	env := setupAttest(t)
	now := env.Ctx.BlockTime().Unix()
	drift := int64(types.DefaultTimestampTolerance)

	_, err := env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), nil, math.NewInt(225_000_000), oneSynth, now-drift-1)
	require.ErrorIs(t, err, types.ErrTimestampOutOfRange)

	// A drift failure does not consume the submission interval.
	record, err := env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), nil, math.NewInt(225_000_000), oneSynth, now-drift)
	require.NoError(t, err)
	require.True(t, record.Accepted)
}

func TestInsolventClaimRecorded(t *testing.T) {
	env := setupAttest(t)
	now := env.Ctx.BlockTime().Unix()

	// 100,000,000 uusdc against 1e18 supply at $150 is only 66.66%.
	record, err := env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), nil, math.NewInt(100_000_000), oneSynth, now)
	require.NoError(t, err)
	require.False(t, record.Accepted)

	// The rejection stays in the log without moving the accepted pointer.
	stored, found := env.Attest.GetAttestation(env.Ctx, record.Index)
	require.True(t, found)
	require.False(t, stored.Accepted)

	_, found = env.Attest.GetLatestAccepted(env.Ctx)
	require.False(t, found)
	require.False(t, env.Attest.IsLatestAttestationValid(env.Ctx))

	require.Equal(t, 1, countEvents(env.Ctx.EventManager().Events(), types.EventTypeAttestationRejected))
}

func TestSolvencyAlertBelowMinimumRatio(t *testing.T) {
	env := setupAttest(t)
	now := env.Ctx.BlockTime().Unix()

	// 200,000,000 uusdc against 1e18 supply at $150 is 133.33%: solvent
	// but under the 150% minimum.
	record, err := env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), nil, math.NewInt(200_000_000), oneSynth, now)
	require.NoError(t, err)
	require.True(t, record.Accepted)

	require.Equal(t, 1, countEvents(env.Ctx.EventManager().Events(), types.EventTypeSolvencyAlert))
}

func TestLatestAttestationExpiry(t *testing.T) {
	env := setupAttest(t)
	now := env.Ctx.BlockTime().Unix()

	_, err := env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), nil, math.NewInt(225_000_000), oneSynth, now)
	require.NoError(t, err)
	require.True(t, env.Attest.IsLatestAttestationValid(env.Ctx))

	env.AdvanceTime(time.Duration(types.DefaultValidityPeriod+1) * time.Second)
	require.False(t, env.Attest.IsLatestAttestationValid(env.Ctx))
}

func TestClaimDeviationAgainstChain(t *testing.T) {
	env := setupAttest(t)

	// Put real locked collateral and supply on chain.
	holder := sdk.AccAddress([]byte("attested_minter_0001"))
	deposit := math.NewInt(1_000_000_000)
	env.FundAccount(t, holder, sdk.NewCoins(sdk.NewCoin(collateraltypes.DefaultCollateralDenom, deposit)))
	ms := collateralkeeper.NewMsgServerImpl(env.Collateral)
	_, err := ms.Deposit(env.Ctx, collateraltypes.NewMsgDeposit(holder.String(), deposit))
	require.NoError(t, err)
	_, err = env.Synth.Mint(env.Ctx, holder, oneSynth)
	require.NoError(t, err)

	// The supply claim sits within 100 bps of the net issuance, but the
	// collateral claim doubles the 225,000,000 locked on chain.
	now := env.Ctx.BlockTime().Unix()
	record, err := env.Attest.SubmitAttestation(
		env.Ctx, attProver.String(), nil,
		math.NewInt(450_000_000), oneSynth, now,
	)
	require.NoError(t, err)
	require.True(t, record.Accepted)

	events := env.Ctx.EventManager().Events()
	require.Equal(t, 1, countEvents(events, types.EventTypeClaimDeviation))
	for _, event := range events {
		if event.Type != types.EventTypeClaimDeviation {
			continue
		}
		attrs := map[string]string{}
		for _, attr := range event.Attributes {
			attrs[attr.Key] = attr.Value
		}
		require.Equal(t, "collateral", attrs[types.AttributeKeyField])
	}
}

func TestAttestationRatioBps(t *testing.T) {
	record := types.AttestationRecord{
		ClaimedCollateral: math.NewInt(225_000_000),
		ClaimedSupply:     oneSynth,
	}

	ratio, known := record.RatioBps(attPrice)
	require.True(t, known)
	require.Equal(t, math.NewInt(15_000), ratio)

	_, known = record.RatioBps(math.ZeroInt())
	require.False(t, known)

	record.ClaimedSupply = math.ZeroInt()
	_, known = record.RatioBps(attPrice)
	require.False(t, known)
}
