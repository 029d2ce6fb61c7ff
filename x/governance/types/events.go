package types

// Event types for the governance module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeProposalCreated  = "governance_proposal_created"
	EventTypeVoteCast         = "governance_vote_cast"
	EventTypeProposalQueued   = "governance_proposal_queued"
	EventTypeProposalExecuted = "governance_proposal_executed"
	EventTypeDelegateSet      = "governance_delegate_set"
	EventTypeParamsUpdated    = "governance_params_updated"
)

// Event attribute keys for the governance module
const (
	AttributeKeyProposalId   = "proposal_id"
	AttributeKeyProposer     = "proposer"
	AttributeKeyTitle        = "title"
	AttributeKeyVoter        = "voter"
	AttributeKeySupport      = "support"
	AttributeKeyWeight       = "weight"
	AttributeKeyForVotes     = "for_votes"
	AttributeKeyAgainstVotes = "against_votes"
	AttributeKeyVotingEnds   = "voting_ends"
	AttributeKeyQueuedUntil  = "queued_until"
	AttributeKeyDelegator    = "delegator"
	AttributeKeyDelegate     = "delegate"
	AttributeKeyQuorumBps    = "quorum_bps"
	AttributeKeyTimelock     = "timelock_seconds"
)
