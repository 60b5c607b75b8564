package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/synthia-chain/synthia/testutil/keeper"
	"github.com/synthia-chain/synthia/x/collateral/keeper"
	"github.com/synthia-chain/synthia/x/collateral/types"
)

var (
	alice = sdk.AccAddress([]byte("alice_collateral_tst"))
	bob   = sdk.AccAddress([]byte("bob___collateral_tst"))
)

func uusdc(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(types.DefaultCollateralDenom, math.NewInt(amount)))
}

func TestDepositWithdrawRoundTrip(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	ms := keeper.NewMsgServerImpl(env.Collateral)

	env.FundAccount(t, alice, uusdc(1_000_000))

	depositResp, err := ms.Deposit(env.Ctx, types.NewMsgDeposit(alice.String(), math.NewInt(600_000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600_000), depositResp.NewBalance)
	require.Equal(t, math.NewInt(600_000), env.Collateral.GetTotalCollateral(env.Ctx))

	// The coins left alice and sit in the module account.
	moduleBalance := env.BankKeeper.GetBalance(env.Ctx, env.Collateral.ModuleAddress(), types.DefaultCollateralDenom)
	require.Equal(t, math.NewInt(600_000), moduleBalance.Amount)

	withdrawResp, err := ms.Withdraw(env.Ctx, types.NewMsgWithdraw(alice.String(), math.NewInt(600_000)))
	require.NoError(t, err)
	require.True(t, withdrawResp.NewBalance.IsZero())

	aliceBalance := env.BankKeeper.GetBalance(env.Ctx, alice, types.DefaultCollateralDenom)
	require.Equal(t, math.NewInt(1_000_000), aliceBalance.Amount)
	require.True(t, env.Collateral.GetTotalCollateral(env.Ctx).IsZero())
}

func TestWithdrawMoreThanBalance(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	ms := keeper.NewMsgServerImpl(env.Collateral)

	env.FundAccount(t, alice, uusdc(100_000))
	_, err := ms.Deposit(env.Ctx, types.NewMsgDeposit(alice.String(), math.NewInt(100_000)))
	require.NoError(t, err)

	_, err = ms.Withdraw(env.Ctx, types.NewMsgWithdraw(alice.String(), math.NewInt(100_001)))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestDepositCallerGate(t *testing.T) {
	env := keepertest.NewTestEnv(t)

	env.FundModule(t, types.ModuleName, uusdc(50_000))

	err := env.Collateral.Deposit(env.Ctx, "dex", alice.String(), math.NewInt(50_000))
	require.ErrorIs(t, err, types.ErrUnauthorizedCaller)

	// Module names from the authorized set may credit owners.
	require.NoError(t, env.Collateral.Deposit(env.Ctx, "synth", alice.String(), math.NewInt(50_000)))
	require.Equal(t, math.NewInt(50_000), env.Collateral.GetUserCollateral(env.Ctx, alice.String()))
}

func TestPauseBlocksFlows(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	ms := keeper.NewMsgServerImpl(env.Collateral)

	env.FundAccount(t, alice, uusdc(200_000))
	_, err := ms.Deposit(env.Ctx, types.NewMsgDeposit(alice.String(), math.NewInt(200_000)))
	require.NoError(t, err)

	require.NoError(t, env.Collateral.PauseLedger(env.Ctx))

	before := env.BankKeeper.GetBalance(env.Ctx, alice, types.DefaultCollateralDenom)
	_, err = ms.Deposit(env.Ctx, types.NewMsgDeposit(alice.String(), math.NewInt(1)))
	require.ErrorIs(t, err, types.ErrLedgerPaused)
	_, err = ms.Withdraw(env.Ctx, types.NewMsgWithdraw(alice.String(), math.NewInt(1)))
	require.ErrorIs(t, err, types.ErrLedgerPaused)

	// The rejected deposit never took custody of alice's coins.
	after := env.BankKeeper.GetBalance(env.Ctx, alice, types.DefaultCollateralDenom)
	require.Equal(t, before, after)

	require.NoError(t, env.Collateral.ResumeLedger(env.Ctx))
	_, err = ms.Withdraw(env.Ctx, types.NewMsgWithdraw(alice.String(), math.NewInt(200_000)))
	require.NoError(t, err)
}

func TestEmergencyWithdrawOnlyWhilePaused(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	ms := keeper.NewMsgServerImpl(env.Collateral)

	env.FundAccount(t, alice, uusdc(300_000))
	_, err := ms.Deposit(env.Ctx, types.NewMsgDeposit(alice.String(), math.NewInt(300_000)))
	require.NoError(t, err)

	_, err = env.Collateral.EmergencyWithdraw(env.Ctx, alice)
	require.ErrorIs(t, err, types.ErrUnauthorizedCaller)

	require.NoError(t, env.Collateral.PauseLedger(env.Ctx))

	amount, err := env.Collateral.EmergencyWithdraw(env.Ctx, alice)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(300_000), amount)
	require.True(t, env.Collateral.GetUserCollateral(env.Ctx, alice.String()).IsZero())
	require.True(t, env.Collateral.GetTotalCollateral(env.Ctx).IsZero())

	// Nothing left to withdraw a second time.
	_, err = env.Collateral.EmergencyWithdraw(env.Ctx, alice)
	require.ErrorIs(t, err, types.ErrBalanceNotFound)
}

func TestInvariantsHold(t *testing.T) {
	env := keepertest.NewTestEnv(t)
	ms := keeper.NewMsgServerImpl(env.Collateral)

	env.FundAccount(t, alice, uusdc(500_000))
	env.FundAccount(t, bob, uusdc(250_000))

	_, err := ms.Deposit(env.Ctx, types.NewMsgDeposit(alice.String(), math.NewInt(500_000)))
	require.NoError(t, err)
	_, err = ms.Deposit(env.Ctx, types.NewMsgDeposit(bob.String(), math.NewInt(250_000)))
	require.NoError(t, err)
	_, err = ms.Withdraw(env.Ctx, types.NewMsgWithdraw(alice.String(), math.NewInt(100_000)))
	require.NoError(t, err)

	msg, broken := keeper.ModuleAccountBackingInvariant(env.Collateral)(env.Ctx)
	require.False(t, broken, msg)
	msg, broken = keeper.TotalMatchesBalancesInvariant(env.Collateral)(env.Ctx)
	require.False(t, broken, msg)

	solvent, err := env.Collateral.IsSolvent(env.Ctx)
	require.NoError(t, err)
	require.True(t, solvent)
}
