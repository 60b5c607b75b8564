package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "synth"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// SyntheticDenom is the 18-decimal synthetic asset denom minted and
	// burned exclusively through this module's account.
	SyntheticDenom = "asynth"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x03, 0x01}

	// PositionKeyPrefix is the prefix for per-owner position records
	PositionKeyPrefix = []byte{0x03, 0x02}

	// TotalLockedKey is the key for the aggregate locked collateral
	TotalLockedKey = []byte{0x03, 0x03}

	// PausedKey is the key for the circuit breaker flag
	PausedKey = []byte{0x03, 0x04}

	// ReentrancyLockKeyPrefix is the prefix for reentrancy lock markers
	ReentrancyLockKeyPrefix = []byte{0x03, 0x05}
)

// GetPositionKey returns the store key for an owner's position
func GetPositionKey(owner string) []byte {
	return append(PositionKeyPrefix, []byte(owner)...)
}

// ReentrancyLockKey returns the store key for a named reentrancy lock
func ReentrancyLockKey(lockKey string) []byte {
	return append(ReentrancyLockKeyPrefix, []byte(lockKey)...)
}

// DefaultAuthority returns the governance module address.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}
