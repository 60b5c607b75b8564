package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	sharedkeeper "github.com/synthia-chain/synthia/x/shared/keeper"
	"github.com/synthia-chain/synthia/x/synth/types"
)

// Keeper of the synth store
type Keeper struct {
	storeKey  storetypes.StoreKey
	cdc       codec.BinaryCodec
	authority string

	bankKeeper       types.BankKeeper
	oracleKeeper     sharedkeeper.OracleKeeperV1
	collateralKeeper sharedkeeper.CollateralKeeperV1
	feeCollectorName string

	metrics *SynthMetrics
}

// NewKeeper creates a new synth Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	oracleKeeper sharedkeeper.OracleKeeperV1,
	collateralKeeper sharedkeeper.CollateralKeeperV1,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:         key,
		cdc:              cdc,
		authority:        authority,
		bankKeeper:       bankKeeper,
		oracleKeeper:     oracleKeeper,
		collateralKeeper: collateralKeeper,
		feeCollectorName: authtypes.FeeCollectorName,
		metrics:          NewSynthMetrics(),
	}
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// ModuleAddress returns the address holding locked position collateral.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// getStore returns the KVStore for the synth module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
