package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/sponsor module sentinel errors
var (
	ErrInvalidAmount       = errorsmod.Register(ModuleName, 2, "invalid sponsorship amount")
	ErrLimitExceeded       = errorsmod.Register(ModuleName, 3, "per-account sponsorship limit exceeded")
	ErrInsufficientReserve = errorsmod.Register(ModuleName, 4, "sponsor reserve cannot cover cost")
	ErrCannotSettle        = errorsmod.Register(ModuleName, 5, "no settlement asset covers the cost")
	ErrNotSponsorable      = errorsmod.Register(ModuleName, 6, "transaction not eligible for sponsorship")
)
