package types

import (
	"fmt"

	"cosmossdk.io/math"
)

const (
	// DefaultQuorumBps is the default quorum threshold: 1000 bps = 10% of
	// cast votes must be in favor for a proposal to be queueable.
	DefaultQuorumBps = 1000

	// DefaultTimelockSeconds is the default delay between queuing and
	// executability.
	DefaultTimelockSeconds = 60

	// MaxBps is the basis-point denominator (100%).
	MaxBps = 10000
)

// Params are the governance tunables.
type Params struct {
	// QuorumBps is the minimum share of cast votes that must be in favor,
	// in basis points of the total.
	QuorumBps math.Int `json:"quorum_bps"`
	// TimelockSeconds is the mandatory delay between a proposal being
	// queued and becoming executable.
	TimelockSeconds uint64 `json:"timelock_seconds"`
}

// DefaultParams returns default governance parameters
func DefaultParams() Params {
	return Params{
		QuorumBps:       math.NewInt(DefaultQuorumBps),
		TimelockSeconds: DefaultTimelockSeconds,
	}
}

// Validate performs basic validation of governance parameters
func (p Params) Validate() error {
	if p.QuorumBps.IsNil() {
		return fmt.Errorf("quorum bps cannot be nil")
	}
	if p.QuorumBps.IsNegative() || p.QuorumBps.GT(math.NewInt(MaxBps)) {
		return fmt.Errorf("quorum bps must be between 0 and %d, got %s", MaxBps, p.QuorumBps)
	}
	return nil
}
