package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/router module sentinel errors
var (
	ErrInvalidAmount      = errorsmod.Register(ModuleName, 2, "invalid swap amount")
	ErrDenomNotAllowed    = errorsmod.Register(ModuleName, 3, "denom not on the swap allow-list")
	ErrSlippageExceeded   = errorsmod.Register(ModuleName, 4, "realized output below minimum")
	ErrUnauthorizedCaller = errorsmod.Register(ModuleName, 5, "caller not authorized for routing")
	ErrAggregatorNotSet   = errorsmod.Register(ModuleName, 6, "no aggregator wired")
	ErrAggregatorFailed   = errorsmod.Register(ModuleName, 7, "aggregator execution failed")
	ErrReentrancy         = errorsmod.Register(ModuleName, 8, "reentrant call detected")
	ErrInvalidDenom       = errorsmod.Register(ModuleName, 9, "invalid denom")
)
