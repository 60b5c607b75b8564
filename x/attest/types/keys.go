package types

import (
	"encoding/binary"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "attest"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x07, 0x01}

	// AttestationKeyPrefix is the prefix for the append-only attestation log
	AttestationKeyPrefix = []byte{0x07, 0x02}

	// AttestationCountKey is the key for the next attestation index
	AttestationCountKey = []byte{0x07, 0x03}

	// LatestAcceptedKey points at the most recent accepted attestation index
	LatestAcceptedKey = []byte{0x07, 0x04}

	// LastSubmissionKey is the key for the previous submission's block time
	LastSubmissionKey = []byte{0x07, 0x05}
)

// GetAttestationKey returns the store key for an attestation index
func GetAttestationKey(index uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, index)
	return append(AttestationKeyPrefix, bz...)
}

// DefaultAuthority returns the governance module address.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}
