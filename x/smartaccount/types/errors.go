package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/smartaccount module sentinel errors
var (
	ErrAccountNotFound       = errorsmod.Register(ModuleName, 2, "orchestration account not found")
	ErrAccountExists         = errorsmod.Register(ModuleName, 3, "orchestration account already registered")
	ErrUnauthorized          = errorsmod.Register(ModuleName, 4, "sender is neither owner nor active delegate")
	ErrOwnerOnly             = errorsmod.Register(ModuleName, 5, "operation restricted to the account owner")
	ErrInvalidGuardians      = errorsmod.Register(ModuleName, 6, "invalid guardian set")
	ErrNotGuardian           = errorsmod.Register(ModuleName, 7, "sender is not a guardian of this account")
	ErrRecoveryActive        = errorsmod.Register(ModuleName, 8, "a recovery proposal is already active")
	ErrNoActiveRecovery      = errorsmod.Register(ModuleName, 9, "no active recovery proposal")
	ErrRecoveryExpired       = errorsmod.Register(ModuleName, 10, "recovery proposal deadline passed")
	ErrDuplicateConfirmation = errorsmod.Register(ModuleName, 11, "guardian already confirmed this proposal")
	ErrDelegateNotFound      = errorsmod.Register(ModuleName, 12, "no delegation grant for this delegate")
	ErrInvalidDelegate       = errorsmod.Register(ModuleName, 13, "invalid delegate")
	ErrNothingMintable       = errorsmod.Register(ModuleName, 14, "swap produced no mintable amount")
	ErrEmptyBatch            = errorsmod.Register(ModuleName, 15, "batch contains no calls")
	ErrInvalidAmount         = errorsmod.Register(ModuleName, 16, "invalid amount")
)
