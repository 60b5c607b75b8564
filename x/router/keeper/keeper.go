package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/synthia-chain/synthia/x/router/types"
	sharedkeeper "github.com/synthia-chain/synthia/x/shared/keeper"
)

// Keeper of the router store
type Keeper struct {
	storeKey  storetypes.StoreKey
	cdc       codec.BinaryCodec
	authority string

	bankKeeper       types.BankKeeper
	collateralKeeper sharedkeeper.CollateralKeeperV1
	aggregator       types.Aggregator
	feeCollectorName string
}

// NewKeeper creates a new router Keeper instance. The aggregator is wired at
// app construction; a nil aggregator fails every swap that needs the venue.
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	collateralKeeper sharedkeeper.CollateralKeeperV1,
	aggregator types.Aggregator,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:         key,
		cdc:              cdc,
		authority:        authority,
		bankKeeper:       bankKeeper,
		collateralKeeper: collateralKeeper,
		aggregator:       aggregator,
		feeCollectorName: authtypes.FeeCollectorName,
	}
}

// SetAggregator replaces the wired swap venue. Used by app wiring and tests.
func (k *Keeper) SetAggregator(aggregator types.Aggregator) {
	k.aggregator = aggregator
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// ModuleAddress returns the router's transient custody address.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// getStore returns the KVStore for the router module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
