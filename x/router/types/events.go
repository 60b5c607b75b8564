package types

// Event types for the router module
const (
	EventTypeSwapIn        = "router_swap_in"
	EventTypeSwapOut       = "router_swap_out"
	EventTypeDirectDeposit = "router_direct_deposit"
	EventTypeDenomAllowed  = "router_denom_allowed"
	EventTypeDenomRemoved  = "router_denom_removed"
	EventTypeParamsUpdated = "router_params_updated"

	AttributeKeyBeneficiary = "beneficiary"
	AttributeKeyRecipient   = "recipient"
	AttributeKeyInputDenom  = "input_denom"
	AttributeKeyOutputDenom = "output_denom"
	AttributeKeyAmountIn    = "amount_in"
	AttributeKeyAmountOut   = "amount_out"
	AttributeKeyFee         = "fee"
	AttributeKeyDenom       = "denom"
	AttributeKeyAuthority   = "authority"
)
