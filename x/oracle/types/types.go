package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Aggregation modes. Mode names describe the computed value: mode 1 is a
// plain truncating mean, not a time-weighted average.
const (
	ModeMedianTrim int64 = 0
	ModeMean       int64 = 1
)

// Source is a registered price source for an asset. The weight is stored
// but not consulted by aggregation; LastHeartbeat gates whether the source
// is used at all.
type Source struct {
	Addr          string   `json:"addr"`
	Weight        math.Int `json:"weight"`
	LastHeartbeat int64    `json:"last_heartbeat"`
}

// NewSource creates a Source.
func NewSource(addr string, weight math.Int, lastHeartbeat int64) Source {
	return Source{
		Addr:          addr,
		Weight:        weight,
		LastHeartbeat: lastHeartbeat,
	}
}

// Stale reports whether the source's last heartbeat is older than the TTL
// at the given time. Subtraction saturates: a heartbeat in the future is
// never stale.
func (s Source) Stale(now int64, ttlSeconds uint64) bool {
	age := now - s.LastHeartbeat
	if age < 0 {
		age = 0
	}
	return uint64(age) > ttlSeconds
}
