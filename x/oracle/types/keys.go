package types

var (
	// ModuleNamespace is the namespace byte for the oracle module (0x03).
	// All store keys are prefixed with this byte to prevent collisions with
	// other modules sharing a store.
	ModuleNamespace = byte(0x03)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x03, 0x01}

	// SourcesKeyPrefix is the prefix for per-asset source lists
	SourcesKeyPrefix = []byte{0x03, 0x02}

	// PerfCounterKey is the key for the aggregation performance counter
	PerfCounterKey = []byte{0x03, 0x03}
)

// GetSourcesKey returns the store key for an asset's source list
func GetSourcesKey(asset string) []byte {
	return append(SourcesKeyPrefix, []byte(asset)...)
}
