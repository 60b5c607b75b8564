package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/synthia-chain/synthia/testutil/keeper"
	collateralkeeper "github.com/synthia-chain/synthia/x/collateral/keeper"
	collateraltypes "github.com/synthia-chain/synthia/x/collateral/types"
	oracletypes "github.com/synthia-chain/synthia/x/oracle/types"
	"github.com/synthia-chain/synthia/x/synth/keeper"
	"github.com/synthia-chain/synthia/x/synth/types"
)

var (
	operator = sdk.AccAddress([]byte("oracle_operator_0001"))
	minter   = sdk.AccAddress([]byte("minter_synth_test_01"))
)

// referencePrice is $150 at the 1e8 price scale.
var referencePrice = math.NewInt(15_000_000_000)

// setupEngine pushes a fresh price and seeds the minter's ledger balance.
func setupEngine(t *testing.T, ledgerBalance int64) *keepertest.TestEnv {
	env := keepertest.NewTestEnv(t)

	oracleParams := oracletypes.DefaultParams()
	oracleParams.Operator = operator.String()
	require.NoError(t, env.Oracle.SetParams(env.Ctx, oracleParams))
	_, err := env.Oracle.PushPrice(env.Ctx, operator, referencePrice)
	require.NoError(t, err)

	if ledgerBalance > 0 {
		coins := sdk.NewCoins(sdk.NewCoin(collateraltypes.DefaultCollateralDenom, math.NewInt(ledgerBalance)))
		env.FundAccount(t, minter, coins)
		ms := collateralkeeper.NewMsgServerImpl(env.Collateral)
		_, err := ms.Deposit(env.Ctx, collateraltypes.NewMsgDeposit(minter.String(), math.NewInt(ledgerBalance)))
		require.NoError(t, err)
	}

	return env
}

func TestMintWorkedExample(t *testing.T) {
	env := setupEngine(t, 1_000_000_000) // 1000 USDC in the ledger

	one := math.NewIntWithDecimal(1, 18) // 1 synthetic unit
	consumed, err := env.Synth.Mint(env.Ctx, minter, one)
	require.NoError(t, err)

	// 1e18 * 1.5e10 * 150 / (100 * 10^20) = 225,000,000 uusdc locked.
	require.Equal(t, math.NewInt(225_000_000), consumed)

	// Fee is 25 bps of the minted amount, withheld from the payout.
	fee := math.NewIntWithDecimal(25, 14) // 2.5e15
	net := one.Sub(fee)                   // 0.9975e18
	held := env.BankKeeper.GetBalance(env.Ctx, minter, types.SyntheticDenom)
	require.Equal(t, net, held.Amount)

	// The ledger gave up exactly the locked collateral.
	require.Equal(t, math.NewInt(775_000_000), env.Collateral.GetUserCollateral(env.Ctx, minter.String()))
	require.Equal(t, consumed, env.Synth.GetTotalLockedCollateral(env.Ctx))

	position, found := env.Synth.GetPosition(env.Ctx, minter.String())
	require.True(t, found)
	require.Equal(t, net, position.MintedAmount)
	require.Equal(t, consumed, position.LockedCollateral)
}

func TestMintInsufficientCollateral(t *testing.T) {
	env := setupEngine(t, 100_000_000) // not enough for 1e18 at $150 and 150%

	_, err := env.Synth.Mint(env.Ctx, minter, math.NewIntWithDecimal(1, 18))
	require.ErrorIs(t, err, types.ErrInsufficientCollateral)
}

func TestMintRequiresFreshPrice(t *testing.T) {
	env := setupEngine(t, 1_000_000_000)

	env.AdvanceTime(time.Duration(oracletypes.DefaultMaxPriceAge+1) * time.Second)

	_, err := env.Synth.Mint(env.Ctx, minter, math.NewIntWithDecimal(1, 18))
	require.ErrorIs(t, err, types.ErrStaleOraclePrice)
}

func TestMintRedeemRoundTrip(t *testing.T) {
	env := setupEngine(t, 1_000_000_000)

	one := math.NewIntWithDecimal(1, 18)
	consumed, err := env.Synth.Mint(env.Ctx, minter, one)
	require.NoError(t, err)

	params, err := env.Synth.GetParams(env.Ctx)
	require.NoError(t, err)

	position, _ := env.Synth.GetPosition(env.Ctx, minter.String())
	burn := position.MintedAmount

	owed := types.RequiredCollateral(burn, referencePrice, params.CollateralRatio)
	fee := types.FeePortion(owed, params.RedeemFeeBps)

	credited, err := env.Synth.Redeem(env.Ctx, minter, burn)
	require.NoError(t, err)
	require.Equal(t, owed.Sub(fee), credited)

	// Synthetic units are gone, the position is closed.
	held := env.BankKeeper.GetBalance(env.Ctx, minter, types.SyntheticDenom)
	require.True(t, held.Amount.IsZero())
	_, found := env.Synth.GetPosition(env.Ctx, minter.String())
	require.False(t, found)

	// The ledger got the net collateral back; the fee reached the collector.
	expectedLedger := math.NewInt(1_000_000_000).Sub(consumed).Add(credited)
	require.Equal(t, expectedLedger, env.Collateral.GetUserCollateral(env.Ctx, minter.String()))

	// The collector got the fee plus the slice of the lock the payout formula
	// rounds away; a closed position leaves nothing in custody.
	feeCollector := env.AccountKeeper.GetModuleAddress(authtypes.FeeCollectorName)
	swept := env.BankKeeper.GetBalance(env.Ctx, feeCollector, collateraltypes.DefaultCollateralDenom)
	require.Equal(t, consumed.Sub(credited), swept.Amount)
	require.True(t, env.Synth.GetTotalLockedCollateral(env.Ctx).IsZero())
}

func TestRedeemAfterPriceRiseKeepsBacking(t *testing.T) {
	env := setupEngine(t, 1_000_000_000)

	second := sdk.AccAddress([]byte("second_minter_acct_1"))
	coins := sdk.NewCoins(sdk.NewCoin(collateraltypes.DefaultCollateralDenom, math.NewInt(1_000_000_000)))
	env.FundAccount(t, second, coins)
	ms := collateralkeeper.NewMsgServerImpl(env.Collateral)
	_, err := ms.Deposit(env.Ctx, collateraltypes.NewMsgDeposit(second.String(), math.NewInt(1_000_000_000)))
	require.NoError(t, err)

	one := math.NewIntWithDecimal(1, 18)
	consumed, err := env.Synth.Mint(env.Ctx, minter, one)
	require.NoError(t, err)
	_, err = env.Synth.Mint(env.Ctx, second, one)
	require.NoError(t, err)

	// Push the price up 10%, the largest single step the oracle accepts.
	env.AdvanceTime(61 * time.Second)
	_, err = env.Oracle.PushPrice(env.Ctx, operator, math.NewInt(16_500_000_000))
	require.NoError(t, err)

	// At the higher price the redeemer is owed more than their locked share.
	// The payout is capped at that share so the remaining position stays
	// fully backed by the module account.
	position, _ := env.Synth.GetPosition(env.Ctx, minter.String())
	credited, err := env.Synth.Redeem(env.Ctx, minter, position.MintedAmount)
	require.NoError(t, err)

	params, err := env.Synth.GetParams(env.Ctx)
	require.NoError(t, err)
	fee := types.FeePortion(consumed, params.RedeemFeeBps)
	require.Equal(t, consumed.Sub(fee), credited)

	// The other position's lock is exactly what remains in custody.
	remaining, found := env.Synth.GetPosition(env.Ctx, second.String())
	require.True(t, found)
	require.Equal(t, remaining.LockedCollateral, env.Synth.GetTotalLockedCollateral(env.Ctx))

	msg, broken := keeper.LockedCollateralBackingInvariant(env.Synth)(env.Ctx)
	require.False(t, broken, msg)
	msg, broken = keeper.PositionsMatchLockedInvariant(env.Synth)(env.Ctx)
	require.False(t, broken, msg)
}

func TestRedeemMoreThanPosition(t *testing.T) {
	env := setupEngine(t, 1_000_000_000)

	one := math.NewIntWithDecimal(1, 18)
	_, err := env.Synth.Mint(env.Ctx, minter, one)
	require.NoError(t, err)

	// The position tracks the net minted amount, so the gross amount overdraws it.
	_, err = env.Synth.Redeem(env.Ctx, minter, one)
	require.ErrorIs(t, err, types.ErrInsufficientPosition)
}

func TestPausedEngineRejectsFlows(t *testing.T) {
	env := setupEngine(t, 1_000_000_000)

	require.NoError(t, env.Synth.PauseEngine(env.Ctx))

	_, err := env.Synth.Mint(env.Ctx, minter, math.NewIntWithDecimal(1, 18))
	require.ErrorIs(t, err, types.ErrEnginePaused)
	_, err = env.Synth.Redeem(env.Ctx, minter, math.NewIntWithDecimal(1, 18))
	require.ErrorIs(t, err, types.ErrEnginePaused)
}

func TestMaxMintable(t *testing.T) {
	env := setupEngine(t, 225_000_000)

	max := env.Synth.MaxMintable(env.Ctx, minter, referencePrice)
	require.Equal(t, math.NewIntWithDecimal(1, 18), max)

	// Zero free collateral means nothing is mintable.
	broke := sdk.AccAddress([]byte("no_collateral_owner_"))
	require.True(t, env.Synth.MaxMintable(env.Ctx, broke, referencePrice).IsZero())
}

func TestSystemAndUserRatios(t *testing.T) {
	env := setupEngine(t, 1_000_000_000)

	one := math.NewIntWithDecimal(1, 18)
	_, err := env.Synth.Mint(env.Ctx, minter, one)
	require.NoError(t, err)

	// Locked 2.25e8 against 0.9975e18 net supply at $150: just over 150%.
	systemRatio, ok := env.Synth.GetSystemCollateralizationRatio(env.Ctx)
	require.True(t, ok)
	require.True(t, systemRatio.GTE(math.NewInt(15000)))

	userRatio, ok := env.Synth.GetUserCollateralizationRatio(env.Ctx, minter)
	require.True(t, ok)
	require.True(t, userRatio.GTE(math.NewInt(15000)))

	liquidatable, err := env.Synth.CanLiquidate(env.Ctx, minter)
	require.NoError(t, err)
	require.False(t, liquidatable)
}

func TestEngineInvariants(t *testing.T) {
	env := setupEngine(t, 1_000_000_000)

	_, err := env.Synth.Mint(env.Ctx, minter, math.NewIntWithDecimal(1, 18))
	require.NoError(t, err)

	msg, broken := keeper.LockedCollateralBackingInvariant(env.Synth)(env.Ctx)
	require.False(t, broken, msg)
	msg, broken = keeper.PositionsMatchLockedInvariant(env.Synth)(env.Ctx)
	require.False(t, broken, msg)
}
