package types

// Event types for the collateral module
const (
	EventTypeCollateralDeposit  = "collateral_deposit"
	EventTypeCollateralWithdraw = "collateral_withdraw"
	EventTypeEmergencyWithdraw  = "collateral_emergency_withdraw"
	EventTypeLedgerPaused       = "collateral_paused"
	EventTypeLedgerResumed      = "collateral_resumed"
	EventTypeParamsUpdated      = "collateral_params_updated"

	AttributeKeyOwner     = "owner"
	AttributeKeyCaller    = "caller"
	AttributeKeyRecipient = "recipient"
	AttributeKeyAmount    = "amount"
	AttributeKeyNewTotal  = "new_total"
	AttributeKeyAuthority = "authority"
)
