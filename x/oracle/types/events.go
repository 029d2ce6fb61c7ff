package types

// Event types for the oracle module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeSourceSet        = "oracle_source_set"
	EventTypeSourceRemoved    = "oracle_source_removed"
	EventTypeSourceCallFailed = "oracle_source_call_failed"
	EventTypePriceAggregated  = "oracle_price_aggregated"
	EventTypeParamsUpdated    = "oracle_params_updated"
)

// Event attribute keys for the oracle module
const (
	AttributeKeyAsset         = "asset"
	AttributeKeySource        = "source"
	AttributeKeyWeight        = "weight"
	AttributeKeyLastHeartbeat = "last_heartbeat"
	AttributeKeyPrice         = "price"
	AttributeKeyNumSources    = "num_sources"
	AttributeKeyMode          = "mode"
	AttributeKeyHeartbeatTtl  = "heartbeat_ttl"
	AttributeKeyReason        = "reason"
)
