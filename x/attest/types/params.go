package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
const (
	DefaultMinProofInterval   = uint64(3600)
	DefaultTimestampTolerance = uint64(3600)
	DefaultValidityPeriod     = uint64(7 * 24 * 3600)
	DefaultMinRatioBps        = uint64(15000)
)

// Params defines the parameters for the attest module
type Params struct {
	// Prover is the only address allowed to submit attestations. Empty
	// disables intake entirely.
	Prover string `json:"prover"`
	// MinProofInterval is the minimum seconds between submissions
	MinProofInterval uint64 `json:"min_proof_interval"`
	// TimestampTolerance bounds the claimed timestamp's distance from block
	// time, in seconds either way
	TimestampTolerance uint64 `json:"timestamp_tolerance"`
	// ValidityPeriod is how long an accepted attestation stays fresh
	ValidityPeriod uint64 `json:"validity_period"`
	// MinRatioBps is the claimed collateralization below which a solvency
	// alert is emitted
	MinRatioBps uint64 `json:"min_ratio_bps"`
}

// DefaultParams returns the default attest parameters
func DefaultParams() Params {
	return Params{
		Prover:             "",
		MinProofInterval:   DefaultMinProofInterval,
		TimestampTolerance: DefaultTimestampTolerance,
		ValidityPeriod:     DefaultValidityPeriod,
		MinRatioBps:        DefaultMinRatioBps,
	}
}

// Validate performs basic validation of attest parameters
func (p Params) Validate() error {
	if p.Prover != "" {
		if _, err := sdk.AccAddressFromBech32(p.Prover); err != nil {
			return fmt.Errorf("invalid prover address: %w", err)
		}
	}
	if p.TimestampTolerance == 0 {
		return fmt.Errorf("timestamp tolerance cannot be zero")
	}
	if p.ValidityPeriod == 0 {
		return fmt.Errorf("validity period cannot be zero")
	}
	if p.MinRatioBps < 10000 {
		return fmt.Errorf("minimum ratio cannot be below 10000 bps")
	}
	return nil
}
