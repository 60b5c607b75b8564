package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/synth module sentinel errors
var (
	ErrInvalidAmount          = errorsmod.Register(ModuleName, 2, "invalid synthetic amount")
	ErrInsufficientCollateral = errorsmod.Register(ModuleName, 3, "insufficient ledger collateral")
	ErrInsufficientPosition   = errorsmod.Register(ModuleName, 4, "redeem exceeds minted position")
	ErrInsufficientSynthetic  = errorsmod.Register(ModuleName, 5, "insufficient synthetic balance")
	ErrPositionNotFound       = errorsmod.Register(ModuleName, 6, "no open position for owner")
	ErrEnginePaused           = errorsmod.Register(ModuleName, 7, "mint/redeem engine is paused")
	ErrReentrancy             = errorsmod.Register(ModuleName, 8, "reentrant call detected")
	ErrStaleOraclePrice       = errorsmod.Register(ModuleName, 9, "reference price unavailable or stale")
	ErrNothingMintable        = errorsmod.Register(ModuleName, 10, "zero mintable amount")
)
