package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/synthia-chain/synthia/testutil/keeper"
	"github.com/synthia-chain/synthia/x/sponsor/keeper"
	"github.com/synthia-chain/synthia/x/sponsor/types"
)

var (
	funder  = sdk.AccAddress([]byte("sponsor_funder_00001"))
	account = sdk.AccAddress([]byte("sponsored_account_01"))
)

func usyn(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(types.NativeDenom, math.NewInt(amount)))
}

// setupSponsor funds the reserve and leaves the sponsored account empty.
func setupSponsor(t *testing.T, reserve int64) *keepertest.TestEnv {
	env := keepertest.NewTestEnv(t)

	if reserve > 0 {
		env.FundAccount(t, funder, usyn(reserve))
		got, err := env.Sponsor.FundReserve(env.Ctx, funder, math.NewInt(reserve))
		require.NoError(t, err)
		require.Equal(t, math.NewInt(reserve), got)
	}
	return env
}

func TestFundReserve(t *testing.T) {
	env := setupSponsor(t, 0)

	_, err := env.Sponsor.FundReserve(env.Ctx, funder, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	env.FundAccount(t, funder, usyn(2_000_000))
	reserve, err := env.Sponsor.FundReserve(env.Ctx, funder, math.NewInt(1_500_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_500_000), reserve)
	require.Equal(t, reserve, env.Sponsor.GetReserve(env.Ctx))

	held := env.BankKeeper.GetBalance(env.Ctx, env.Sponsor.ModuleAddress(), types.NativeDenom)
	require.Equal(t, reserve, held.Amount)
}

func TestChargeSettlesInPrimaryDenom(t *testing.T) {
	env := setupSponsor(t, 1_000_000)
	env.FundAccount(t, account, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(5_000))))

	settlement, err := env.Sponsor.ChargeForSponsorship(env.Ctx, account, math.NewInt(1_000))
	require.NoError(t, err)

	// Primary rate is 1:1, so the account pays 1,000 uusdc.
	require.Equal(t, sdk.NewCoin("uusdc", math.NewInt(1_000)), settlement)
	require.Equal(t, math.NewInt(4_000),
		env.BankKeeper.GetBalance(env.Ctx, account, "uusdc").Amount)

	// The module paid the gas in native units to the fee collector.
	collector := authtypes.NewModuleAddress(authtypes.FeeCollectorName)
	require.Equal(t, math.NewInt(1_000),
		env.BankKeeper.GetBalance(env.Ctx, collector, types.NativeDenom).Amount)
	require.Equal(t, math.NewInt(999_000), env.Sponsor.GetReserve(env.Ctx))

	usage, found := env.Sponsor.GetUsage(env.Ctx, account.String())
	require.True(t, found)
	require.Equal(t, math.NewInt(1_000), usage.Spent)
}

func TestChargeFallsBackToSecondaryDenom(t *testing.T) {
	env := setupSponsor(t, 1_000_000)

	// No uusdc at all, but enough of the 1e18-scale synthetic: at the
	// 1e-12 secondary rate a 1,000 usyn cost converts to 1e15 asynth.
	env.FundAccount(t, account, sdk.NewCoins(sdk.NewCoin("asynth", math.NewIntWithDecimal(2, 15))))

	settlement, err := env.Sponsor.ChargeForSponsorship(env.Ctx, account, math.NewInt(1_000))
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoin("asynth", math.NewIntWithDecimal(1, 15)), settlement)
	require.Equal(t, math.NewIntWithDecimal(1, 15),
		env.BankKeeper.GetBalance(env.Ctx, account, "asynth").Amount)
}

func TestChargeCannotSettle(t *testing.T) {
	env := setupSponsor(t, 1_000_000)

	err := env.Sponsor.CanSponsor(env.Ctx, account, math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrCannotSettle)

	_, err = env.Sponsor.ChargeForSponsorship(env.Ctx, account, math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrCannotSettle)
}

func TestChargeInsufficientReserve(t *testing.T) {
	env := setupSponsor(t, 500)
	env.FundAccount(t, account, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(5_000))))

	err := env.Sponsor.CanSponsor(env.Ctx, account, math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrInsufficientReserve)
}

func TestWindowLimitAndReset(t *testing.T) {
	env := setupSponsor(t, 10_000_000)
	env.FundAccount(t, account, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(10_000_000))))

	// Two charges of 600,000 against the 1,000,000 per-window limit.
	_, err := env.Sponsor.ChargeForSponsorship(env.Ctx, account, math.NewInt(600_000))
	require.NoError(t, err)

	_, err = env.Sponsor.ChargeForSponsorship(env.Ctx, account, math.NewInt(600_000))
	require.ErrorIs(t, err, types.ErrLimitExceeded)

	// A new window starts with fresh spend.
	env.AdvanceTime(time.Duration(types.DefaultWindowSeconds) * time.Second)
	_, err = env.Sponsor.ChargeForSponsorship(env.Ctx, account, math.NewInt(600_000))
	require.NoError(t, err)

	usage, found := env.Sponsor.GetUsage(env.Ctx, account.String())
	require.True(t, found)
	require.Equal(t, math.NewInt(600_000), usage.Spent)
}

func TestReserveBackingInvariant(t *testing.T) {
	env := setupSponsor(t, 1_000_000)
	env.FundAccount(t, account, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(5_000))))

	_, err := env.Sponsor.ChargeForSponsorship(env.Ctx, account, math.NewInt(1_000))
	require.NoError(t, err)

	_, broken := keeper.ReserveBackingInvariant(env.Sponsor)(env.Ctx)
	require.False(t, broken)
}
