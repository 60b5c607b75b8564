package types

// Event types and attribute keys for the attest module
const (
	EventTypeAttestationAccepted = "attestation_accepted"
	EventTypeAttestationRejected = "attestation_rejected"
	EventTypeSolvencyAlert       = "solvency_alert"
	EventTypeClaimDeviation      = "claim_deviation"
	EventTypeParamsUpdated       = "attest_params_updated"

	AttributeKeyIndex             = "index"
	AttributeKeyProver            = "prover"
	AttributeKeyClaimedCollateral = "claimed_collateral"
	AttributeKeyClaimedSupply     = "claimed_supply"
	AttributeKeyTimestamp         = "timestamp"
	AttributeKeyVerified          = "verified"
	AttributeKeyRatioBps          = "ratio_bps"
	AttributeKeyObservedValue     = "observed"
	AttributeKeyClaimedValue      = "claimed"
	AttributeKeyField             = "field"
	AttributeKeyReason            = "reason"
	AttributeKeyAuthority         = "authority"
)
