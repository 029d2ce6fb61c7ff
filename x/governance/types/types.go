package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "governance"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// ProposalStatus is the derived lifecycle phase of a proposal. It is never
// persisted; storage holds the raw timestamps and flags it is computed from.
type ProposalStatus string

const (
	// StatusPending means the voting window is still open.
	StatusPending ProposalStatus = "pending"
	// StatusVotingClosed means voting has ended and the proposal has not
	// been queued. Proposals that fail quorum stay here forever; there is
	// no explicit rejected state.
	StatusVotingClosed ProposalStatus = "voting_closed"
	// StatusQueued means the proposal passed quorum and is waiting out the
	// timelock.
	StatusQueued ProposalStatus = "queued"
	// StatusExecuted is terminal.
	StatusExecuted ProposalStatus = "executed"
)

// Proposal is a governance proposal. Vote tallies are signed 128-bit
// totals; timestamps are unix seconds from the ledger clock.
type Proposal struct {
	Id           uint64   `json:"id"`
	Proposer     string   `json:"proposer"`
	Title        string   `json:"title"`
	Created      int64    `json:"created"`
	VotingEnds   int64    `json:"voting_ends"`
	QueuedUntil  int64    `json:"queued_until"`
	ForVotes     math.Int `json:"for_votes"`
	AgainstVotes math.Int `json:"against_votes"`
	Executed     bool     `json:"executed"`
}

// Status derives the lifecycle phase at the given time.
func (p Proposal) Status(now int64) ProposalStatus {
	switch {
	case p.Executed:
		return StatusExecuted
	case p.QueuedUntil != 0:
		return StatusQueued
	case now >= p.VotingEnds:
		return StatusVotingClosed
	default:
		return StatusPending
	}
}

// TotalVotes returns the sum of for and against tallies.
func (p Proposal) TotalVotes() math.Int {
	return p.ForVotes.Add(p.AgainstVotes)
}

// VoteReceipt records the last vote cast by a voter on a proposal.
// Receipts are last-write-wins per (proposal, voter) and are audit-only:
// the engine never reads them back when tallying.
type VoteReceipt struct {
	Voter   string   `json:"voter"`
	Support bool     `json:"support"`
	Weight  math.Int `json:"weight"`
}

// Delegation maps a delegator to its delegate. Stored by Delegate and read
// by GetDelegate; vote tallying does not consult it.
type Delegation struct {
	Delegator string `json:"delegator"`
	Delegate  string `json:"delegate"`
}
