package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/governance/types"
)

// RegisterInvariants registers the governance module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "proposal-window", ProposalWindowInvariant(k))
	ir.RegisterRoute(types.ModuleName, "proposal-counter", ProposalCounterInvariant(k))
}

// ProposalWindowInvariant checks the structural ordering of every stored
// proposal: the voting window never ends before creation, a queued
// proposal is queued no earlier than its voting end, and only queued
// proposals can be executed.
func ProposalWindowInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)

		_ = k.IterateProposals(ctx, func(p types.Proposal) bool {
			if p.VotingEnds < p.Created {
				msg += fmt.Sprintf("proposal %d voting ends before creation\n", p.Id)
				broken = true
			}
			if p.QueuedUntil != 0 && p.QueuedUntil < p.VotingEnds {
				msg += fmt.Sprintf("proposal %d queued before voting end\n", p.Id)
				broken = true
			}
			if p.Executed && p.QueuedUntil == 0 {
				msg += fmt.Sprintf("proposal %d executed without being queued\n", p.Id)
				broken = true
			}
			if p.ForVotes.IsNil() || p.AgainstVotes.IsNil() {
				msg += fmt.Sprintf("proposal %d has nil tallies\n", p.Id)
				broken = true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "proposal-window", msg), broken
	}
}

// ProposalCounterInvariant checks that no stored proposal id exceeds the
// monotonic counter.
func ProposalCounterInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		counter := k.GetProposalCounter(ctx)

		var (
			msg    string
			broken bool
		)
		_ = k.IterateProposals(ctx, func(p types.Proposal) bool {
			if p.Id > counter {
				msg += fmt.Sprintf("proposal %d exceeds counter %d\n", p.Id, counter)
				broken = true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "proposal-counter", msg), broken
	}
}
