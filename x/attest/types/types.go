package types

import (
	"cosmossdk.io/math"
)

// ratioScale converts a collateral/supply-value quotient into basis points at
// the oracle price scale: 10000 x 10^20.
var ratioScale = math.NewIntWithDecimal(10000, 20)

// AttestationRecord is one entry in the append-only solvency log.
type AttestationRecord struct {
	Index              uint64   `json:"index"`
	Prover             string   `json:"prover"`
	ClaimedCollateral  math.Int `json:"claimed_collateral"`
	ClaimedSupply      math.Int `json:"claimed_supply"`
	Timestamp          int64    `json:"timestamp"`
	Accepted           bool     `json:"accepted"`
	// Verified is true only when a wired proof verifier checked the proof.
	// An accepted record with Verified false passed intake gating alone.
	Verified bool `json:"verified"`
}

// Validate checks an attestation record for internal consistency
func (r AttestationRecord) Validate() error {
	if r.ClaimedCollateral.IsNil() || r.ClaimedCollateral.IsNegative() {
		return ErrInvalidClaim.Wrap("claimed collateral cannot be negative")
	}
	if r.ClaimedSupply.IsNil() || r.ClaimedSupply.IsNegative() {
		return ErrInvalidClaim.Wrap("claimed supply cannot be negative")
	}
	if r.Timestamp <= 0 {
		return ErrInvalidClaim.Wrap("timestamp must be positive")
	}
	return nil
}

// RatioBps returns the claimed collateralization in basis points at the given
// oracle price. Returns (0, false) when the claimed supply is zero.
func (r AttestationRecord) RatioBps(price math.Int) (math.Int, bool) {
	if r.ClaimedSupply.IsNil() || !r.ClaimedSupply.IsPositive() || !price.IsPositive() {
		return math.ZeroInt(), false
	}
	return r.ClaimedCollateral.Mul(ratioScale).Quo(r.ClaimedSupply.Mul(price)), true
}
