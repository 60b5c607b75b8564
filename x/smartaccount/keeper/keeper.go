package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	routertypes "github.com/synthia-chain/synthia/x/router/types"
	sharedkeeper "github.com/synthia-chain/synthia/x/shared/keeper"
	"github.com/synthia-chain/synthia/x/smartaccount/types"
)

// BatchCallHandler consumes the payload of a batch call addressed to a
// registered target.
type BatchCallHandler func(ctx sdk.Context, payload []byte) error

// Keeper of the smartaccount store
type Keeper struct {
	storeKey  storetypes.StoreKey
	cdc       codec.BinaryCodec
	authority string

	bankKeeper       types.BankKeeper
	oracleKeeper     sharedkeeper.OracleKeeperV1
	collateralKeeper sharedkeeper.CollateralKeeperV1
	synthKeeper      sharedkeeper.SynthKeeperV1
	routerKeeper     sharedkeeper.RouterKeeperV1

	callHandlers map[string]BatchCallHandler
}

// NewKeeper creates a new smartaccount Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	oracleKeeper sharedkeeper.OracleKeeperV1,
	collateralKeeper sharedkeeper.CollateralKeeperV1,
	synthKeeper sharedkeeper.SynthKeeperV1,
	routerKeeper sharedkeeper.RouterKeeperV1,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:         key,
		cdc:              cdc,
		authority:        authority,
		bankKeeper:       bankKeeper,
		oracleKeeper:     oracleKeeper,
		collateralKeeper: collateralKeeper,
		synthKeeper:      synthKeeper,
		routerKeeper:     routerKeeper,
		callHandlers:     make(map[string]BatchCallHandler),
	}
}

// RegisterCallHandler installs a handler for batch calls addressed to target.
// Wiring-time only, not safe for concurrent use.
func (k *Keeper) RegisterCallHandler(target string, handler BatchCallHandler) {
	k.callHandlers[target] = handler
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// RouterModuleAddress returns the router module account address swap inputs
// are staged at.
func (k Keeper) RouterModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(routertypes.ModuleName)
}

// getStore returns the KVStore for the smartaccount module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
