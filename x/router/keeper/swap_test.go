package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/synthia-chain/synthia/testutil/keeper"
	"github.com/synthia-chain/synthia/x/router/types"
	smartaccounttypes "github.com/synthia-chain/synthia/x/smartaccount/types"
)

var (
	beneficiary = sdk.AccAddress([]byte("router_beneficiary_1"))
	recipient   = sdk.AccAddress([]byte("router_recipient_001"))
)

const nativeDenom = "usyn"

func fundRouter(t *testing.T, env *keepertest.TestEnv, denom string, amount int64) {
	env.FundModule(t, types.ModuleName, sdk.NewCoins(sdk.NewCoin(denom, math.NewInt(amount))))
}

func TestSwapToCollateralAndDeposit(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	fundRouter(t, env, nativeDenom, 1_000_000)

	realized, err := env.Router.SwapToCollateralAndDeposit(
		env.Ctx, smartaccounttypes.ModuleName,
		nativeDenom, math.NewInt(1_000_000), math.NewInt(900_000), nil, beneficiary,
	)
	require.NoError(t, err)

	// 30 bps fee on the input, the stub swaps the rest one-to-one.
	require.Equal(t, math.NewInt(997_000), realized)
	require.Equal(t, realized, env.Collateral.GetUserCollateral(env.Ctx, beneficiary.String()))

	feeCollector := env.AccountKeeper.GetModuleAddress(authtypes.FeeCollectorName)
	fee := env.BankKeeper.GetBalance(env.Ctx, feeCollector, nativeDenom)
	require.Equal(t, math.NewInt(3_000), fee.Amount)

	require.Len(t, env.Aggregator.Calls, 1)
	require.Equal(t, types.CollateralDenom, env.Aggregator.Calls[0].OutputDenom)
}

func TestSwapSlippageExceeded(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	fundRouter(t, env, nativeDenom, 1_000_000)

	short := math.NewInt(500_000)
	env.Aggregator.FixedOutput = &short

	_, err := env.Router.SwapToCollateralAndDeposit(
		env.Ctx, smartaccounttypes.ModuleName,
		nativeDenom, math.NewInt(1_000_000), math.NewInt(900_000), nil, beneficiary,
	)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// Nothing reached the ledger.
	require.True(t, env.Collateral.GetUserCollateral(env.Ctx, beneficiary.String()).IsZero())
}

func TestSwapDenomAllowList(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	fundRouter(t, env, "asynth", 1_000_000)

	_, err := env.Router.SwapToCollateralAndDeposit(
		env.Ctx, smartaccounttypes.ModuleName,
		"asynth", math.NewInt(1_000_000), math.ZeroInt(), nil, beneficiary,
	)
	require.ErrorIs(t, err, types.ErrDenomNotAllowed)

	require.NoError(t, env.Router.AllowDenom(env.Ctx, "asynth"))
	_, err = env.Router.SwapToCollateralAndDeposit(
		env.Ctx, smartaccounttypes.ModuleName,
		"asynth", math.NewInt(1_000_000), math.ZeroInt(), nil, beneficiary,
	)
	require.NoError(t, err)

	require.NoError(t, env.Router.RemoveDenom(env.Ctx, "asynth"))
	require.False(t, env.Router.IsDenomAllowed(env.Ctx, "asynth"))
}

func TestSwapCallerGate(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	fundRouter(t, env, nativeDenom, 1_000_000)

	_, err := env.Router.SwapToCollateralAndDeposit(
		env.Ctx, "synth",
		nativeDenom, math.NewInt(1_000_000), math.ZeroInt(), nil, beneficiary,
	)
	require.ErrorIs(t, err, types.ErrUnauthorizedCaller)
}

func TestCollateralInputPassThrough(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	fundRouter(t, env, types.CollateralDenom, 1_000_000)

	realized, err := env.Router.SwapToCollateralAndDeposit(
		env.Ctx, smartaccounttypes.ModuleName,
		types.CollateralDenom, math.NewInt(1_000_000), math.ZeroInt(), nil, beneficiary,
	)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(997_000), realized)

	// No venue call on the direct path.
	require.Empty(t, env.Aggregator.Calls)
}

func TestSwapCollateralToAsset(t *testing.T) {
	env := keepertest.NewTestEnv(t)

	// Seed the ledger: coins in the collateral module account, credit recorded.
	env.FundModule(t, "collateral", sdk.NewCoins(sdk.NewCoin(types.CollateralDenom, math.NewInt(500_000))))
	require.NoError(t, env.Collateral.Deposit(env.Ctx, types.ModuleName, recipient.String(), math.NewInt(500_000)))

	realized, err := env.Router.SwapCollateralToAsset(
		env.Ctx, smartaccounttypes.ModuleName,
		recipient, nativeDenom, math.NewInt(500_000), math.NewInt(400_000), nil, recipient,
	)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(498_500), realized) // 500_000 minus 30 bps, one-to-one

	held := env.BankKeeper.GetBalance(env.Ctx, recipient, nativeDenom)
	require.Equal(t, realized, held.Amount)
	require.True(t, env.Collateral.GetUserCollateral(env.Ctx, recipient.String()).IsZero())
}

func TestSwapCollateralToCollateralIsFeeFree(t *testing.T) {
	env := keepertest.NewTestEnv(t)

	env.FundModule(t, "collateral", sdk.NewCoins(sdk.NewCoin(types.CollateralDenom, math.NewInt(500_000))))
	require.NoError(t, env.Collateral.Deposit(env.Ctx, types.ModuleName, recipient.String(), math.NewInt(500_000)))

	realized, err := env.Router.SwapCollateralToAsset(
		env.Ctx, smartaccounttypes.ModuleName,
		recipient, types.CollateralDenom, math.NewInt(500_000), math.NewInt(500_000), nil, recipient,
	)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), realized)

	held := env.BankKeeper.GetBalance(env.Ctx, recipient, types.CollateralDenom)
	require.Equal(t, math.NewInt(500_000), held.Amount)
	require.Empty(t, env.Aggregator.Calls)
}

func TestAggregatorFailureSurfaces(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	fundRouter(t, env, nativeDenom, 1_000_000)
	env.Aggregator.Fail = true

	_, err := env.Router.SwapToCollateralAndDeposit(
		env.Ctx, smartaccounttypes.ModuleName,
		nativeDenom, math.NewInt(1_000_000), math.ZeroInt(), nil, beneficiary,
	)
	require.ErrorIs(t, err, types.ErrAggregatorFailed)
}
