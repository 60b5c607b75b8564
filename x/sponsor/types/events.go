package types

// Event types and attribute keys for the sponsor module
const (
	EventTypeGasSponsored   = "gas_sponsored"
	EventTypeReserveFunded  = "reserve_funded"
	EventTypeSponsorSettled = "sponsor_settled"
	EventTypeParamsUpdated  = "sponsor_params_updated"

	AttributeKeyAccount     = "account"
	AttributeKeyCost        = "cost"
	AttributeKeyWindowStart = "window_start"
	AttributeKeySpent       = "spent"
	AttributeKeyFunder      = "funder"
	AttributeKeyAmount      = "amount"
	AttributeKeyReserve     = "reserve"
	AttributeKeyDenom       = "denom"
	AttributeKeySettlement  = "settlement"
	AttributeKeyAuthority   = "authority"
)
