package types

import (
	"cosmossdk.io/math"
)

// ProofVerifier checks a solvency proof against its public claim. A nil
// verifier is legal: intake then records attestations as unverified.
type ProofVerifier interface {
	VerifyProof(proof []byte, claimedCollateral, claimedSupply math.Int, timestamp int64) error
}
