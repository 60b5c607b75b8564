package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/synthia-chain/synthia/testutil/keeper"
	oracletypes "github.com/synthia-chain/synthia/x/oracle/types"
	"github.com/synthia-chain/synthia/x/smartaccount/types"
	synthtypes "github.com/synthia-chain/synthia/x/synth/types"
)

var priceOperator = sdk.AccAddress([]byte("orch_price_operator_"))

// orchPrice is $150 at the 1e8 price scale.
var orchPrice = math.NewInt(15_000_000_000)

// setupOrchestrate registers the owner's account, pushes a price and funds
// the owner with native units to swap in.
func setupOrchestrate(t *testing.T, usynBalance int64) *keepertest.TestEnv {
	env := setupAccount(t)

	oracleParams := oracletypes.DefaultParams()
	oracleParams.Operator = priceOperator.String()
	require.NoError(t, env.Oracle.SetParams(env.Ctx, oracleParams))
	_, err := env.Oracle.PushPrice(env.Ctx, priceOperator, orchPrice)
	require.NoError(t, err)

	if usynBalance > 0 {
		env.FundAccount(t, owner, sdk.NewCoins(sdk.NewCoin("usyn", math.NewInt(usynBalance))))
	}
	return env
}

func TestSwapAndMint(t *testing.T) {
	env := setupOrchestrate(t, 1_000_000_000)

	requested := math.NewIntWithDecimal(1, 18)
	collateralOut, minted, err := env.SmartAccount.SwapAndMint(
		env.Ctx, owner.String(), owner.String(),
		"usyn", math.NewInt(1_000_000_000), math.NewInt(900_000_000), requested, nil,
	)
	require.NoError(t, err)

	// 30 bps routing fee leaves 997,000,000 for the venue at a 1:1 rate.
	require.Equal(t, math.NewInt(997_000_000), collateralOut)
	require.Equal(t, requested, minted)

	require.Len(t, env.Aggregator.Calls, 1)
	require.Equal(t, sdk.NewCoin("usyn", math.NewInt(997_000_000)), env.Aggregator.Calls[0].Input)
	require.Equal(t, "uusdc", env.Aggregator.Calls[0].OutputDenom)

	// Minting 1e18 at $150 and 150% locked 225,000,000 of the deposit.
	require.Equal(t, math.NewInt(772_000_000), env.Collateral.GetUserCollateral(env.Ctx, owner.String()))
	require.Equal(t, math.NewInt(225_000_000), env.Synth.GetTotalLockedCollateral(env.Ctx))

	// The owner receives the minted amount net of the 25 bps mint fee.
	net := requested.Sub(math.NewIntWithDecimal(25, 14))
	require.Equal(t, net, env.BankKeeper.GetBalance(env.Ctx, owner, synthtypes.SyntheticDenom).Amount)

	// The input left the owner entirely.
	require.True(t, env.BankKeeper.GetBalance(env.Ctx, owner, "usyn").Amount.IsZero())
}

func TestSwapAndMintCappedByCollateral(t *testing.T) {
	env := setupOrchestrate(t, 1_000_000_000)

	requested := math.NewIntWithDecimal(1, 19) // far beyond what the deposit supports
	_, minted, err := env.SmartAccount.SwapAndMint(
		env.Ctx, owner.String(), owner.String(),
		"usyn", math.NewInt(1_000_000_000), math.ZeroInt(), requested, nil,
	)
	require.NoError(t, err)

	// Sized down to what 997,000,000 of free collateral supports.
	expected := math.NewInt(997_000_000).
		Mul(synthtypes.ConversionScale()).
		Quo(orchPrice.Mul(math.NewInt(150)))
	require.Equal(t, expected, minted)
	require.True(t, minted.LT(requested))
}

func TestSwapAndMintNothingRequested(t *testing.T) {
	env := setupOrchestrate(t, 1_000_000)

	_, _, err := env.SmartAccount.SwapAndMint(
		env.Ctx, owner.String(), owner.String(),
		"usyn", math.NewInt(1_000_000), math.ZeroInt(), math.ZeroInt(), nil,
	)
	require.ErrorIs(t, err, types.ErrNothingMintable)
}

func TestSwapAndMintUnauthorized(t *testing.T) {
	env := setupOrchestrate(t, 1_000_000)

	_, _, err := env.SmartAccount.SwapAndMint(
		env.Ctx, stranger.String(), owner.String(),
		"usyn", math.NewInt(1_000_000), math.ZeroInt(), math.NewIntWithDecimal(1, 17), nil,
	)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestRedeemAndSwap(t *testing.T) {
	env := setupOrchestrate(t, 1_000_000_000)

	requested := math.NewIntWithDecimal(1, 18)
	_, _, err := env.SmartAccount.SwapAndMint(
		env.Ctx, owner.String(), owner.String(),
		"usyn", math.NewInt(1_000_000_000), math.NewInt(900_000_000), requested, nil,
	)
	require.NoError(t, err)

	burn := math.NewIntWithDecimal(5, 17)
	assetOut, err := env.SmartAccount.RedeemAndSwap(
		env.Ctx, owner.String(), owner.String(),
		burn, "usyn", math.NewInt(100_000_000), nil,
	)
	require.NoError(t, err)

	// Redeeming 5e17 releases 112,500,000; the 25 bps redeem fee leaves
	// 112,218,750 for the swap, and the 30 bps routing fee leaves
	// 111,882,094 realized at a 1:1 rate.
	require.Equal(t, math.NewInt(111_882_094), assetOut)
	require.Equal(t, math.NewInt(111_882_094), env.BankKeeper.GetBalance(env.Ctx, owner, "usyn").Amount)

	// The redeemed credit passed straight through the ledger.
	require.Equal(t, math.NewInt(772_000_000), env.Collateral.GetUserCollateral(env.Ctx, owner.String()))

	held := env.BankKeeper.GetBalance(env.Ctx, owner, synthtypes.SyntheticDenom).Amount
	require.Equal(t, requested.Sub(math.NewIntWithDecimal(25, 14)).Sub(burn), held)
}

func TestRedeemAndSwapByDelegate(t *testing.T) {
	env := setupOrchestrate(t, 1_000_000_000)

	_, _, err := env.SmartAccount.SwapAndMint(
		env.Ctx, owner.String(), owner.String(),
		"usyn", math.NewInt(1_000_000_000), math.ZeroInt(), math.NewIntWithDecimal(1, 18), nil,
	)
	require.NoError(t, err)

	_, err = env.SmartAccount.GrantDelegate(env.Ctx, owner.String(), delegate.String())
	require.NoError(t, err)

	_, err = env.SmartAccount.RedeemAndSwap(
		env.Ctx, delegate.String(), owner.String(),
		math.NewIntWithDecimal(1, 17), "usyn", math.ZeroInt(), nil,
	)
	require.NoError(t, err)
}
