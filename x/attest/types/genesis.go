package types

import (
	"fmt"
)

// GenesisState defines the attest module's genesis state
type GenesisState struct {
	Params         Params              `json:"params"`
	Attestations   []AttestationRecord `json:"attestations"`
	LatestAccepted uint64              `json:"latest_accepted"`
	HasAccepted    bool                `json:"has_accepted"`
	LastSubmission int64               `json:"last_submission"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Attestations: []AttestationRecord{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	for i, record := range gs.Attestations {
		if record.Index != uint64(i) {
			return fmt.Errorf("attestation log gap at index %d", i)
		}
		if err := record.Validate(); err != nil {
			return fmt.Errorf("attestation %d: %w", i, err)
		}
	}
	if gs.HasAccepted {
		if gs.LatestAccepted >= uint64(len(gs.Attestations)) {
			return fmt.Errorf("latest accepted index %d out of range", gs.LatestAccepted)
		}
		if !gs.Attestations[gs.LatestAccepted].Accepted {
			return fmt.Errorf("latest accepted index %d points at a rejected record", gs.LatestAccepted)
		}
	}
	return nil
}
