package keeper

import (
	"bytes"
	"fmt"

	"cosmossdk.io/math"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	"github.com/synthia-chain/synthia/x/attest/types"
)

// maxProofSize caps the serialized proof accepted on-chain.
const maxProofSize = 4096

// SolvencyCircuit is the statement a reserve proof must satisfy.
//
// Public inputs:
//   - Collateral: claimed reserve total (base collateral units)
//   - Supply: claimed synthetic supply (base synthetic units)
//   - Timestamp: unix time the reserve snapshot was taken
//
// Private inputs (witness):
//   - Reserves: per-custodian reserve balances at the snapshot
//
// Constraint: the custodian balances sum to the public Collateral. The prover
// therefore knows a reserve breakdown matching the claimed total without
// revealing it on-chain.
type SolvencyCircuit struct {
	Collateral frontend.Variable `gnark:",public"`
	Supply     frontend.Variable `gnark:",public"`
	Timestamp  frontend.Variable `gnark:",public"`

	Reserves [32]frontend.Variable `gnark:",private"`
}

// Define implements the gnark Circuit interface.
func (circuit *SolvencyCircuit) Define(api frontend.API) error {
	sum := frontend.Variable(0)
	for i := 0; i < len(circuit.Reserves); i++ {
		api.AssertIsLessOrEqual(0, circuit.Reserves[i])
		sum = api.Add(sum, circuit.Reserves[i])
	}
	api.AssertIsEqual(sum, circuit.Collateral)

	api.AssertIsLessOrEqual(1, circuit.Timestamp)
	return nil
}

// Groth16Verifier checks solvency proofs over bn254 against a fixed verifying
// key produced by the off-chain proving setup.
type Groth16Verifier struct {
	vk groth16.VerifyingKey
}

var _ types.ProofVerifier = (*Groth16Verifier)(nil)

// NewGroth16Verifier deserializes the verifying key. The key bytes come from
// the node's configuration; there is one circuit, so one key.
func NewGroth16Verifier(vkBytes []byte) (*Groth16Verifier, error) {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(vkBytes)); err != nil {
		return nil, fmt.Errorf("deserialize verifying key: %w", err)
	}
	return &Groth16Verifier{vk: vk}, nil
}

// VerifyProof checks the proof against the claim's public inputs.
func (v *Groth16Verifier) VerifyProof(proofBytes []byte, claimedCollateral, claimedSupply math.Int, timestamp int64) error {
	if len(proofBytes) == 0 {
		return fmt.Errorf("empty proof")
	}
	if len(proofBytes) > maxProofSize {
		return fmt.Errorf("proof size %d exceeds max %d", len(proofBytes), maxProofSize)
	}

	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return fmt.Errorf("deserialize proof: %w", err)
	}

	assignment := &SolvencyCircuit{
		Collateral: claimedCollateral.BigInt(),
		Supply:     claimedSupply.BigInt(),
		Timestamp:  timestamp,
	}
	publicWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("build public witness: %w", err)
	}

	if err := groth16.Verify(proof, v.vk, publicWitness); err != nil {
		return fmt.Errorf("groth16 verification: %w", err)
	}
	return nil
}
