package types

import (
	"fmt"
)

const (
	// DefaultHeartbeatTtlSeconds is the default maximum heartbeat age
	// before a source is excluded from aggregation.
	DefaultHeartbeatTtlSeconds = 300

	// DefaultMode is median-with-trim.
	DefaultMode = ModeMedianTrim
)

// Params are the oracle tunables.
type Params struct {
	// HeartbeatTtlSeconds is the maximum age of a source's last heartbeat
	// before it is skipped. Staleness affects use only; stale sources stay
	// registered.
	HeartbeatTtlSeconds uint64 `json:"heartbeat_ttl_seconds"`
	// Mode selects the aggregation algorithm: 0 = median with outlier
	// trim, 1 = mean.
	Mode int64 `json:"mode"`
}

// DefaultParams returns default oracle parameters
func DefaultParams() Params {
	return Params{
		HeartbeatTtlSeconds: DefaultHeartbeatTtlSeconds,
		Mode:                DefaultMode,
	}
}

// Validate performs basic validation of oracle parameters
func (p Params) Validate() error {
	if p.Mode != ModeMedianTrim && p.Mode != ModeMean {
		return fmt.Errorf("mode must be %d (median with trim) or %d (mean), got %d",
			ModeMedianTrim, ModeMean, p.Mode)
	}
	return nil
}
