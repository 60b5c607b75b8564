package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/attest module sentinel errors
var (
	ErrUnauthorizedProver  = errorsmod.Register(ModuleName, 2, "submitter is not the registered prover")
	ErrTooFrequent         = errorsmod.Register(ModuleName, 3, "submitted before the minimum proof interval elapsed")
	ErrTimestampOutOfRange = errorsmod.Register(ModuleName, 4, "claimed timestamp outside tolerance of block time")
	ErrInvalidClaim        = errorsmod.Register(ModuleName, 5, "claimed values are invalid")
	ErrInsolventClaim      = errorsmod.Register(ModuleName, 6, "claimed collateral does not cover claimed supply")
	ErrProofRejected       = errorsmod.Register(ModuleName, 7, "proof verification failed")
	ErrNoAttestation       = errorsmod.Register(ModuleName, 8, "attestation not found")
)
