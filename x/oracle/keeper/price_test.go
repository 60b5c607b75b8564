package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/synthia-chain/synthia/testutil/keeper"
	"github.com/synthia-chain/synthia/x/oracle/types"
)

var testOperator = sdk.AccAddress([]byte("oracle_operator_0001"))

func setupOracle(t *testing.T) *keepertest.TestEnv {
	env := keepertest.NewTestEnv(t)

	params := types.DefaultParams()
	params.Operator = testOperator.String()
	require.NoError(t, env.Oracle.SetParams(env.Ctx, params))

	return env
}

func TestPushPriceFirstUpdate(t *testing.T) {
	env := setupOracle(t)

	price := math.NewInt(15_000_000_000) // $150 at 1e8
	count, err := env.Oracle.PushPrice(env.Ctx, testOperator, price)
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)

	got, lastUpdated, err := env.Oracle.GetPrice(env.Ctx)
	require.NoError(t, err)
	require.Equal(t, price, got)
	require.Equal(t, env.Ctx.BlockTime().Unix(), lastUpdated)
}

func TestPushPriceRejectsNonOperator(t *testing.T) {
	env := setupOracle(t)

	intruder := sdk.AccAddress([]byte("not_the_operator_abc"))
	_, err := env.Oracle.PushPrice(env.Ctx, intruder, math.NewInt(15_000_000_000))
	require.ErrorIs(t, err, types.ErrNotOperator)
}

func TestPushPriceRejectsOutOfBounds(t *testing.T) {
	env := setupOracle(t)

	_, err := env.Oracle.PushPrice(env.Ctx, testOperator, math.NewInt(100)) // below $0.01
	require.ErrorIs(t, err, types.ErrPriceOutOfBounds)

	tooHigh := types.DefaultMaxPrice.AddRaw(1)
	_, err = env.Oracle.PushPrice(env.Ctx, testOperator, tooHigh)
	require.ErrorIs(t, err, types.ErrPriceOutOfBounds)
}

func TestPushPriceRateLimited(t *testing.T) {
	env := setupOracle(t)

	_, err := env.Oracle.PushPrice(env.Ctx, testOperator, math.NewInt(15_000_000_000))
	require.NoError(t, err)

	// Within the minimum interval the same operator is throttled.
	_, err = env.Oracle.PushPrice(env.Ctx, testOperator, math.NewInt(15_100_000_000))
	require.ErrorIs(t, err, types.ErrUpdateTooFrequent)

	env.AdvanceTime(time.Duration(types.DefaultMinUpdateInterval+1) * time.Second)
	count, err := env.Oracle.PushPrice(env.Ctx, testOperator, math.NewInt(15_100_000_000))
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)
}

func TestPushPriceCapsRelativeChange(t *testing.T) {
	env := setupOracle(t)

	_, err := env.Oracle.PushPrice(env.Ctx, testOperator, math.NewInt(10_000_000_000))
	require.NoError(t, err)

	env.AdvanceTime(time.Duration(types.DefaultMinUpdateInterval+1) * time.Second)

	// A 20% jump exceeds the 10% per-update cap.
	_, err = env.Oracle.PushPrice(env.Ctx, testOperator, math.NewInt(12_000_000_000))
	require.ErrorIs(t, err, types.ErrExcessiveChange)

	// Exactly 10% is allowed.
	_, err = env.Oracle.PushPrice(env.Ctx, testOperator, math.NewInt(11_000_000_000))
	require.NoError(t, err)
}

func TestGetPriceStaleness(t *testing.T) {
	env := setupOracle(t)

	price := math.NewInt(15_000_000_000)
	_, err := env.Oracle.PushPrice(env.Ctx, testOperator, price)
	require.NoError(t, err)

	env.AdvanceTime(time.Duration(types.DefaultMaxPriceAge+1) * time.Second)

	_, _, err = env.Oracle.GetPrice(env.Ctx)
	require.ErrorIs(t, err, types.ErrStalePrice)

	got, _, stale := env.Oracle.GetPriceUnsafe(env.Ctx)
	require.True(t, stale)
	require.Equal(t, price, got)
}

func TestGetPriceBeforeFirstPush(t *testing.T) {
	env := setupOracle(t)

	_, _, err := env.Oracle.GetPrice(env.Ctx)
	require.ErrorIs(t, err, types.ErrPriceNotFound)

	_, _, stale := env.Oracle.GetPriceUnsafe(env.Ctx)
	require.True(t, stale)
}

func TestPausedOracleRejectsUpdates(t *testing.T) {
	env := setupOracle(t)

	require.NoError(t, env.Oracle.PauseOracle(env.Ctx))

	_, err := env.Oracle.PushPrice(env.Ctx, testOperator, math.NewInt(15_000_000_000))
	require.ErrorIs(t, err, types.ErrOraclePaused)

	require.NoError(t, env.Oracle.ResumeOracle(env.Ctx))
	_, err = env.Oracle.PushPrice(env.Ctx, testOperator, math.NewInt(15_000_000_000))
	require.NoError(t, err)
}

func TestChangeBps(t *testing.T) {
	require.Equal(t, math.NewInt(1000), types.ChangeBps(math.NewInt(10_000), math.NewInt(11_000)))
	require.Equal(t, math.NewInt(1000), types.ChangeBps(math.NewInt(10_000), math.NewInt(9_000)))
	require.Equal(t, math.ZeroInt(), types.ChangeBps(math.ZeroInt(), math.NewInt(9_000)))
}
