// Package keeper provides shared keeper interfaces for cross-module communication.
// Versioned interfaces allow stable API contracts between modules.
package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// =============================================================================
// Oracle Keeper Interfaces (Versioned)
// =============================================================================

// OracleKeeperV1 defines the minimal oracle keeper interface for cross-module use.
// Modules should depend on this interface rather than the concrete keeper.
type OracleKeeperV1 interface {
	// GetPrice returns the reference price (scaled 1e8) and its last-update
	// time. Errors once the price age exceeds the configured maximum.
	GetPrice(ctx context.Context) (price sdkmath.Int, lastUpdated int64, err error)

	// GetPriceUnsafe returns the stored price regardless of age, together
	// with an explicit staleness flag. For advisory computations only.
	GetPriceUnsafe(ctx context.Context) (price sdkmath.Int, lastUpdated int64, stale bool)
}

// =============================================================================
// Collateral Keeper Interfaces (Versioned)
// =============================================================================

// CollateralKeeperV1 defines the ledger interface exposed to the engine,
// router and orchestrator modules. Every mutator takes the calling module's
// name; the ledger enforces its authorized-caller set.
type CollateralKeeperV1 interface {
	// Deposit credits owner with amount already held by the ledger module
	// account. The caller is responsible for moving the coins first.
	Deposit(ctx context.Context, caller, owner string, amount sdkmath.Int) error

	// Withdraw debits owner and pushes the coins to recipient.
	Withdraw(ctx context.Context, caller, owner string, recipient sdk.AccAddress, amount sdkmath.Int) error

	// WithdrawToModule debits owner and moves the coins into another
	// module's account. Module recipients must use this over Withdraw so
	// their module account is never shadowed by a base account.
	WithdrawToModule(ctx context.Context, caller, owner, recipientModule string, amount sdkmath.Int) error

	// GetUserCollateral returns the recorded balance for owner.
	GetUserCollateral(ctx context.Context, owner string) sdkmath.Int

	// GetTotalCollateral returns the tracked aggregate.
	GetTotalCollateral(ctx context.Context) sdkmath.Int
}

// =============================================================================
// Synthetic Engine Interfaces (Versioned)
// =============================================================================

// SynthKeeperV1 defines the mint/redeem engine interface for the orchestrator.
type SynthKeeperV1 interface {
	// Mint mints the requested synthetic amount against the owner's ledger
	// balance and returns the collateral consumed.
	Mint(ctx context.Context, owner sdk.AccAddress, amount sdkmath.Int) (sdkmath.Int, error)

	// Redeem burns the synthetic amount and credits the net collateral back
	// to the owner's ledger balance. Returns the net collateral credited.
	Redeem(ctx context.Context, owner sdk.AccAddress, amount sdkmath.Int) (sdkmath.Int, error)

	// MaxMintable returns the largest synthetic amount the owner's current
	// ledger balance supports at the given price.
	MaxMintable(ctx context.Context, owner sdk.AccAddress, price sdkmath.Int) sdkmath.Int
}

// =============================================================================
// Router Interfaces (Versioned)
// =============================================================================

// RouterKeeperV1 defines the swap-routing interface for the orchestrator.
// Entry points reject callers other than the orchestrator module.
type RouterKeeperV1 interface {
	// SwapToCollateralAndDeposit swaps funds already moved to the router
	// module account into collateral and deposits the realized output into
	// the ledger credited to beneficiary. Returns the realized output.
	SwapToCollateralAndDeposit(ctx context.Context, caller string, inputDenom string, amountIn, minOut sdkmath.Int, instruction []byte, beneficiary sdk.AccAddress) (sdkmath.Int, error)

	// SwapCollateralToAsset swaps collateral held by from into outputDenom
	// and sends the realized output to recipient. Returns the realized output.
	SwapCollateralToAsset(ctx context.Context, caller string, from sdk.AccAddress, outputDenom string, collateralIn, minOut sdkmath.Int, instruction []byte, recipient sdk.AccAddress) (sdkmath.Int, error)
}
