package types

// Event types for the synth module
const (
	EventTypeSynthMint     = "synth_mint"
	EventTypeSynthRedeem   = "synth_redeem"
	EventTypeEnginePaused  = "synth_paused"
	EventTypeEngineResumed = "synth_resumed"
	EventTypeParamsUpdated = "synth_params_updated"

	AttributeKeyOwner       = "owner"
	AttributeKeyMinted      = "minted"
	AttributeKeyBurned      = "burned"
	AttributeKeyFee         = "fee"
	AttributeKeyCollateral  = "collateral"
	AttributeKeyPrice       = "price"
	AttributeKeyTotalLocked = "total_locked"
	AttributeKeyAuthority   = "authority"
)
