package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01, 0x01}

	// PricePointKey is the key for the current reference price point
	PricePointKey = []byte{0x01, 0x02}

	// PausedKey is the key for the emergency pause flag
	PausedKey = []byte{0x01, 0x03}
)

// DefaultAuthority returns the governance module address as the only allowed
// authority for oracle parameter updates and pausing.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}
