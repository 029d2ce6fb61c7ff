package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Governance module sentinel errors
var (
	ErrUnauthorized      = sdkerrors.Register(ModuleName, 2, "unauthorized")
	ErrInvalidProposal   = sdkerrors.Register(ModuleName, 3, "invalid proposal")
	ErrProposalNotFound  = sdkerrors.Register(ModuleName, 4, "proposal not found")
	ErrInvalidVote       = sdkerrors.Register(ModuleName, 5, "invalid vote")
	ErrInvalidDelegation = sdkerrors.Register(ModuleName, 6, "invalid delegation")
	ErrInvalidParams     = sdkerrors.Register(ModuleName, 7, "invalid params")
)
