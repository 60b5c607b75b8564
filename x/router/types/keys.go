package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "router"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// OrchestratorCaller is the only module name accepted on swap entry
	// points.
	OrchestratorCaller = "smartaccount"

	// CollateralDenom is the swap target on the inbound path.
	CollateralDenom = "uusdc"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x04, 0x01}

	// AllowedDenomKeyPrefix is the prefix for the swappable denom allow-list
	AllowedDenomKeyPrefix = []byte{0x04, 0x02}

	// ReentrancyLockKeyPrefix is the prefix for reentrancy lock markers
	ReentrancyLockKeyPrefix = []byte{0x04, 0x03}
)

// GetAllowedDenomKey returns the store key for an allow-listed denom
func GetAllowedDenomKey(denom string) []byte {
	return append(AllowedDenomKeyPrefix, []byte(denom)...)
}

// ReentrancyLockKey returns the store key for a named reentrancy lock
func ReentrancyLockKey(lockKey string) []byte {
	return append(ReentrancyLockKeyPrefix, []byte(lockKey)...)
}

// DefaultAuthority returns the governance module address.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}
