package types

// Event types for the Oracle module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeOraclePriceUpdate   = "oracle_price_update"
	EventTypeOraclePriceRejected = "oracle_price_rejected"
	EventTypeOraclePaused        = "oracle_paused"
	EventTypeOracleResumed       = "oracle_resumed"
	EventTypeOracleParamsUpdated = "oracle_params_updated"
)

// Event attribute keys for the Oracle module
const (
	AttributeKeyPrice         = "price"
	AttributeKeyPreviousPrice = "previous_price"
	AttributeKeyOperator      = "operator"
	AttributeKeyUpdateCount   = "update_count"
	AttributeKeyLastUpdated   = "last_updated"
	AttributeKeyReason        = "reason"
)
