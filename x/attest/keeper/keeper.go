package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/synthia-chain/synthia/x/shared/keeper"

	"github.com/synthia-chain/synthia/x/attest/types"
)

// Keeper of the attest store
type Keeper struct {
	storeKey  storetypes.StoreKey
	cdc       codec.BinaryCodec
	authority string

	oracleKeeper sharedkeeper.OracleKeeperV1
	synthKeeper  types.SynthKeeper
	bankKeeper   types.BankKeeper

	// verifier may be nil; intake then records attestations unverified.
	verifier types.ProofVerifier

	metrics *AttestMetrics
}

// NewKeeper creates a new attest Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	oracleKeeper sharedkeeper.OracleKeeperV1,
	synthKeeper types.SynthKeeper,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:     key,
		cdc:          cdc,
		authority:    authority,
		oracleKeeper: oracleKeeper,
		synthKeeper:  synthKeeper,
		bankKeeper:   bankKeeper,
		metrics:      NewAttestMetrics(),
	}
}

// SetVerifier wires a proof verifier. Called once during app construction.
func (k *Keeper) SetVerifier(verifier types.ProofVerifier) {
	k.verifier = verifier
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the attest module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
