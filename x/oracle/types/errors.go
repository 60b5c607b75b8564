package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Oracle module sentinel errors
var (
	// Price validation errors
	ErrInvalidPrice     = sdkerrors.Register(ModuleName, 2, "invalid price")
	ErrPriceOutOfBounds = sdkerrors.Register(ModuleName, 3, "price outside allowed bounds")
	ErrPriceNotFound    = sdkerrors.Register(ModuleName, 4, "price not found")
	ErrStalePrice       = sdkerrors.Register(ModuleName, 5, "price data expired")

	// Update throttling errors
	ErrUpdateTooFrequent = sdkerrors.Register(ModuleName, 6, "price update before minimum interval elapsed")
	ErrExcessiveChange   = sdkerrors.Register(ModuleName, 7, "price change exceeds maximum allowed")

	// Authorization errors
	ErrNotOperator = sdkerrors.Register(ModuleName, 8, "signer is not the oracle operator")

	// State errors
	ErrOraclePaused = sdkerrors.Register(ModuleName, 9, "oracle is paused")
)
