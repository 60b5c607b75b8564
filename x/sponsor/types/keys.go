package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "sponsor"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// NativeDenom is the gas denom the reserve is held and spent in.
	NativeDenom = "usyn"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x06, 0x01}

	// UsageKeyPrefix is the prefix for per-account window usage records
	UsageKeyPrefix = []byte{0x06, 0x02}

	// ReserveKey is the key for the tracked native reserve
	ReserveKey = []byte{0x06, 0x03}
)

// GetUsageKey returns the store key for an account's usage record
func GetUsageKey(account string) []byte {
	return append(UsageKeyPrefix, []byte(account)...)
}

// DefaultAuthority returns the governance module address.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}
