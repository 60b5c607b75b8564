package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/collateral module sentinel errors
var (
	ErrInvalidAmount       = errorsmod.Register(ModuleName, 2, "invalid collateral amount")
	ErrInsufficientBalance = errorsmod.Register(ModuleName, 3, "insufficient collateral balance")
	ErrUnauthorizedCaller  = errorsmod.Register(ModuleName, 4, "caller not authorized for collateral operations")
	ErrLedgerPaused        = errorsmod.Register(ModuleName, 5, "collateral ledger is paused")
	ErrReentrancy          = errorsmod.Register(ModuleName, 6, "reentrant call detected")
	ErrInvalidDenom        = errorsmod.Register(ModuleName, 7, "invalid collateral denom")
	ErrBalanceNotFound     = errorsmod.Register(ModuleName, 8, "collateral balance not found")
)
