package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "smartaccount"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// GuardianCount is the fixed guardian set size per account.
	GuardianCount = 3

	// RecoveryThreshold is the number of distinct guardian approvals that
	// executes an ownership change.
	RecoveryThreshold = 2
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05, 0x01}

	// AccountKeyPrefix is the prefix for orchestration account records
	AccountKeyPrefix = []byte{0x05, 0x02}
)

// GetAccountKey returns the store key for an owner's orchestration account
func GetAccountKey(owner string) []byte {
	return append(AccountKeyPrefix, []byte(owner)...)
}

// DefaultAuthority returns the governance module address.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}
