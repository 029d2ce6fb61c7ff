package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// AssetSources binds an asset to its registered source list for export.
type AssetSources struct {
	Asset   string   `json:"asset"`
	Sources []Source `json:"sources"`
}

// GenesisState defines the oracle module's genesis state.
type GenesisState struct {
	Params    Params         `json:"params"`
	Sources   []AssetSources `json:"sources"`
	PerfCount math.Int       `json:"perf_count"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		PerfCount: math.ZeroInt(),
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if gs.PerfCount.IsNil() || gs.PerfCount.IsNegative() {
		return fmt.Errorf("perf count must be non-negative")
	}

	seenAssets := make(map[string]bool, len(gs.Sources))
	for _, as := range gs.Sources {
		if as.Asset == "" {
			return fmt.Errorf("asset cannot be empty")
		}
		if seenAssets[as.Asset] {
			return fmt.Errorf("duplicate asset %s", as.Asset)
		}
		seenAssets[as.Asset] = true

		seenAddrs := make(map[string]bool, len(as.Sources))
		for _, s := range as.Sources {
			if s.Addr == "" {
				return fmt.Errorf("source address cannot be empty for asset %s", as.Asset)
			}
			if seenAddrs[s.Addr] {
				return fmt.Errorf("duplicate source %s for asset %s", s.Addr, as.Asset)
			}
			seenAddrs[s.Addr] = true
			if s.Weight.IsNil() || s.Weight.IsNegative() {
				return fmt.Errorf("source %s for asset %s has invalid weight", s.Addr, as.Asset)
			}
		}
	}
	return nil
}
