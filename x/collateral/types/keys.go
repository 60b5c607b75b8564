package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "collateral"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x02, 0x01}

	// BalanceKeyPrefix is the prefix for per-owner balance records
	BalanceKeyPrefix = []byte{0x02, 0x02}

	// TotalCollateralKey is the key for the tracked aggregate total
	TotalCollateralKey = []byte{0x02, 0x03}

	// PausedKey is the key for the circuit breaker flag
	PausedKey = []byte{0x02, 0x04}

	// ReentrancyLockKeyPrefix is the prefix for reentrancy lock markers
	ReentrancyLockKeyPrefix = []byte{0x02, 0x05}
)

// GetBalanceKey returns the store key for an owner's balance record
func GetBalanceKey(owner string) []byte {
	return append(BalanceKeyPrefix, []byte(owner)...)
}

// ReentrancyLockKey returns the store key for a named reentrancy lock
func ReentrancyLockKey(lockKey string) []byte {
	return append(ReentrancyLockKeyPrefix, []byte(lockKey)...)
}

// DefaultAuthority returns the governance module address as the only allowed
// authority for parameter updates and pausing.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}
