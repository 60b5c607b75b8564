package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdkstd "github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	attestkeeper "github.com/synthia-chain/synthia/x/attest/keeper"
	attesttypes "github.com/synthia-chain/synthia/x/attest/types"
	collateralkeeper "github.com/synthia-chain/synthia/x/collateral/keeper"
	collateraltypes "github.com/synthia-chain/synthia/x/collateral/types"
	oraclekeeper "github.com/synthia-chain/synthia/x/oracle/keeper"
	oracletypes "github.com/synthia-chain/synthia/x/oracle/types"
	routerkeeper "github.com/synthia-chain/synthia/x/router/keeper"
	routertypes "github.com/synthia-chain/synthia/x/router/types"
	smartaccountkeeper "github.com/synthia-chain/synthia/x/smartaccount/keeper"
	smartaccounttypes "github.com/synthia-chain/synthia/x/smartaccount/types"
	sponsorkeeper "github.com/synthia-chain/synthia/x/sponsor/keeper"
	sponsortypes "github.com/synthia-chain/synthia/x/sponsor/types"
	synthkeeper "github.com/synthia-chain/synthia/x/synth/keeper"
	synthtypes "github.com/synthia-chain/synthia/x/synth/types"
)

// GenesisTime is the block time every test context starts at.
var GenesisTime = time.Unix(1_700_000_000, 0).UTC()

// TestEnv wires every protocol keeper over one in-memory multistore so
// cross-module flows run against real state.
type TestEnv struct {
	Ctx sdk.Context
	Cdc *codec.ProtoCodec

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper

	Oracle       *oraclekeeper.Keeper
	Collateral   *collateralkeeper.Keeper
	Synth        *synthkeeper.Keeper
	Router       *routerkeeper.Keeper
	SmartAccount *smartaccountkeeper.Keeper
	Sponsor      *sponsorkeeper.Keeper
	Attest       *attestkeeper.Keeper

	Aggregator *StubAggregator

	Authority string
}

// NewTestEnv builds the full keeper set with default params installed.
func NewTestEnv(t testing.TB) *TestEnv {
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)
	oracleStoreKey := storetypes.NewKVStoreKey(oracletypes.StoreKey)
	collateralStoreKey := storetypes.NewKVStoreKey(collateraltypes.StoreKey)
	synthStoreKey := storetypes.NewKVStoreKey(synthtypes.StoreKey)
	routerStoreKey := storetypes.NewKVStoreKey(routertypes.StoreKey)
	smartaccountStoreKey := storetypes.NewKVStoreKey(smartaccounttypes.StoreKey)
	sponsorStoreKey := storetypes.NewKVStoreKey(sponsortypes.StoreKey)
	attestStoreKey := storetypes.NewKVStoreKey(attesttypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range []*storetypes.KVStoreKey{
		authStoreKey, bankStoreKey, oracleStoreKey, collateralStoreKey,
		synthStoreKey, routerStoreKey, smartaccountStoreKey, sponsorStoreKey,
		attestStoreKey,
	} {
		stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	sdkstd.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName:   nil,
		minttypes.ModuleName:         {authtypes.Minter},
		collateraltypes.ModuleName:   nil,
		synthtypes.ModuleName:        {authtypes.Minter, authtypes.Burner},
		routertypes.ModuleName:       nil,
		smartaccounttypes.ModuleName: nil,
		sponsortypes.ModuleName:      nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority,
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority,
		log.NewNopLogger(),
	)

	oracle := oraclekeeper.NewKeeper(cdc, oracleStoreKey, authority)
	collateral := collateralkeeper.NewKeeper(cdc, collateralStoreKey, bankKeeper, authority)
	synth := synthkeeper.NewKeeper(cdc, synthStoreKey, bankKeeper, oracle, collateral, authority)

	aggregator := NewStubAggregator(bankKeeper)
	router := routerkeeper.NewKeeper(cdc, routerStoreKey, bankKeeper, collateral, aggregator, authority)

	smartaccount := smartaccountkeeper.NewKeeper(
		cdc, smartaccountStoreKey, bankKeeper, oracle, collateral, synth, router, authority,
	)
	sponsor := sponsorkeeper.NewKeeper(cdc, sponsorStoreKey, bankKeeper, authority)
	attest := attestkeeper.NewKeeper(cdc, attestStoreKey, oracle, synth, bankKeeper, authority)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1, Time: GenesisTime}, false, log.NewNopLogger())

	// Materialize module accounts before any transfer can shadow them.
	for name := range maccPerms {
		accountKeeper.GetModuleAccount(ctx, name)
	}

	require.NoError(t, oracle.SetParams(ctx, oracletypes.DefaultParams()))
	require.NoError(t, collateral.SetParams(ctx, collateraltypes.DefaultParams()))
	require.NoError(t, synth.SetParams(ctx, synthtypes.DefaultParams()))
	require.NoError(t, router.SetParams(ctx, routertypes.DefaultParams()))
	require.NoError(t, smartaccount.SetParams(ctx, smartaccounttypes.DefaultParams()))
	require.NoError(t, sponsor.SetParams(ctx, sponsortypes.DefaultParams()))
	require.NoError(t, attest.SetParams(ctx, attesttypes.DefaultParams()))

	for _, denom := range routertypes.DefaultGenesis().AllowedDenoms {
		require.NoError(t, router.AllowDenom(ctx, denom))
	}

	return &TestEnv{
		Ctx:           ctx,
		Cdc:           cdc,
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		Oracle:        oracle,
		Collateral:    collateral,
		Synth:         synth,
		Router:        router,
		SmartAccount:  smartaccount,
		Sponsor:       sponsor,
		Attest:        attest,
		Aggregator:    aggregator,
		Authority:     authority,
	}
}

// AdvanceTime moves the block time forward and bumps the height.
func (env *TestEnv) AdvanceTime(d time.Duration) {
	header := env.Ctx.BlockHeader()
	header.Time = header.Time.Add(d)
	header.Height++
	env.Ctx = env.Ctx.WithBlockHeader(header)
}

// FundAccount mints coins into the test faucet and sends them to addr.
func (env *TestEnv) FundAccount(t testing.TB, addr sdk.AccAddress, coins sdk.Coins) {
	require.NoError(t, env.BankKeeper.MintCoins(env.Ctx, minttypes.ModuleName, coins))
	require.NoError(t, env.BankKeeper.SendCoinsFromModuleToAccount(env.Ctx, minttypes.ModuleName, addr, coins))
}

// FundModule mints coins into the test faucet and sends them to a module account.
func (env *TestEnv) FundModule(t testing.TB, moduleName string, coins sdk.Coins) {
	require.NoError(t, env.BankKeeper.MintCoins(env.Ctx, minttypes.ModuleName, coins))
	require.NoError(t, env.BankKeeper.SendCoinsFromModuleToModule(env.Ctx, minttypes.ModuleName, moduleName, coins))
}

// StubAggregator is an in-memory swap venue. It mints the output amount to the
// router module account at a fixed rate, leaving the consumed input in place,
// which is exactly what the router's balance-delta measurement expects.
type StubAggregator struct {
	bankKeeper bankkeeper.BaseKeeper

	// Rate is output units per input unit.
	Rate math.LegacyDec
	// FixedOutput overrides the rate when non-nil.
	FixedOutput *math.Int
	// Fail makes every swap error.
	Fail bool

	// Calls records each swap for assertions.
	Calls []StubSwapCall
}

// StubSwapCall records one aggregator invocation.
type StubSwapCall struct {
	Input       sdk.Coin
	OutputDenom string
	Instruction []byte
}

var _ routertypes.Aggregator = (*StubAggregator)(nil)

func NewStubAggregator(bankKeeper bankkeeper.BaseKeeper) *StubAggregator {
	return &StubAggregator{
		bankKeeper: bankKeeper,
		Rate:       math.LegacyOneDec(),
	}
}

// Swap credits the router module account with the computed output.
func (a *StubAggregator) Swap(ctx context.Context, input sdk.Coin, outputDenom string, instruction []byte) error {
	a.Calls = append(a.Calls, StubSwapCall{Input: input, OutputDenom: outputDenom, Instruction: instruction})

	if a.Fail {
		return fmt.Errorf("stub aggregator: swap failed")
	}

	output := math.LegacyNewDecFromInt(input.Amount).Mul(a.Rate).TruncateInt()
	if a.FixedOutput != nil {
		output = *a.FixedOutput
	}
	if !output.IsPositive() {
		return nil
	}

	coins := sdk.NewCoins(sdk.NewCoin(outputDenom, output))
	if err := a.bankKeeper.MintCoins(ctx, minttypes.ModuleName, coins); err != nil {
		return err
	}
	return a.bankKeeper.SendCoinsFromModuleToModule(ctx, minttypes.ModuleName, routertypes.ModuleName, coins)
}
