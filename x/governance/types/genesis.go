package types

import (
	"fmt"
)

// GenesisReceipt binds a vote receipt to its proposal for export.
type GenesisReceipt struct {
	ProposalId uint64      `json:"proposal_id"`
	Receipt    VoteReceipt `json:"receipt"`
}

// GenesisState defines the governance module's genesis state.
type GenesisState struct {
	Params          Params           `json:"params"`
	ProposalCounter uint64           `json:"proposal_counter"`
	Proposals       []Proposal       `json:"proposals"`
	Receipts        []GenesisReceipt `json:"receipts"`
	Delegations     []Delegation     `json:"delegations"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[uint64]bool, len(gs.Proposals))
	for _, p := range gs.Proposals {
		if p.Id == 0 {
			return fmt.Errorf("proposal id cannot be zero")
		}
		if seen[p.Id] {
			return fmt.Errorf("duplicate proposal id %d", p.Id)
		}
		seen[p.Id] = true
		if p.Id > gs.ProposalCounter {
			return fmt.Errorf("proposal id %d exceeds counter %d", p.Id, gs.ProposalCounter)
		}
		if p.VotingEnds < p.Created {
			return fmt.Errorf("proposal %d ends before it was created", p.Id)
		}
		if p.ForVotes.IsNil() || p.AgainstVotes.IsNil() {
			return fmt.Errorf("proposal %d has nil vote tallies", p.Id)
		}
	}

	for _, r := range gs.Receipts {
		if !seen[r.ProposalId] {
			return fmt.Errorf("receipt references unknown proposal %d", r.ProposalId)
		}
		if r.Receipt.Voter == "" {
			return fmt.Errorf("receipt for proposal %d has empty voter", r.ProposalId)
		}
	}

	for _, d := range gs.Delegations {
		if d.Delegator == "" || d.Delegate == "" {
			return fmt.Errorf("delegation record must have delegator and delegate")
		}
	}

	return nil
}
