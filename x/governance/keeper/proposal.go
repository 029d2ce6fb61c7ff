package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/governance/types"
)

// nextProposalID increments the proposal counter and returns the new id.
// Ids start at 1; zero is never assigned.
func (k Keeper) nextProposalID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	var id uint64
	if bz := store.Get(types.ProposalCounterKey); bz != nil {
		id = sdk.BigEndianToUint64(bz)
	}
	id++
	store.Set(types.ProposalCounterKey, sdk.Uint64ToBigEndian(id))
	return id
}

// GetProposalCounter returns the last assigned proposal id.
func (k Keeper) GetProposalCounter(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.ProposalCounterKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// SetProposalCounter overwrites the proposal id counter. Used by genesis.
func (k Keeper) SetProposalCounter(ctx context.Context, counter uint64) {
	store := k.getStore(ctx)
	store.Set(types.ProposalCounterKey, sdk.Uint64ToBigEndian(counter))
}

// SetProposal persists a proposal.
func (k Keeper) SetProposal(ctx context.Context, p types.Proposal) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal proposal %d: %w", p.Id, err)
	}
	store.Set(types.GetProposalKey(p.Id), bz)
	return nil
}

// GetProposal retrieves a proposal by id. A missing id is an explicit
// ErrProposalNotFound, never a panic.
func (k Keeper) GetProposal(ctx context.Context, id uint64) (types.Proposal, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetProposalKey(id))
	if bz == nil {
		return types.Proposal{}, types.ErrProposalNotFound.Wrapf("id %d", id)
	}

	var p types.Proposal
	if err := json.Unmarshal(bz, &p); err != nil {
		return types.Proposal{}, fmt.Errorf("failed to unmarshal proposal %d: %w", id, err)
	}
	return p, nil
}

// IterateProposals iterates over all proposals in id order.
func (k Keeper) IterateProposals(ctx context.Context, cb func(p types.Proposal) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ProposalKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var p types.Proposal
		if err := json.Unmarshal(iterator.Value(), &p); err != nil {
			return err
		}
		if cb(p) {
			break
		}
	}
	return nil
}

// GetProposals returns all proposals in id order.
func (k Keeper) GetProposals(ctx context.Context) ([]types.Proposal, error) {
	proposals := make([]types.Proposal, 0, 16)
	err := k.IterateProposals(ctx, func(p types.Proposal) bool {
		proposals = append(proposals, p)
		return false
	})
	return proposals, err
}

// Propose creates a new proposal. Open to any caller; there is no admin
// gate on proposal creation.
func (k Keeper) Propose(ctx context.Context, proposer, title string, votingPeriodSecs uint64) (types.Proposal, error) {
	if proposer == "" {
		return types.Proposal{}, types.ErrInvalidProposal.Wrap("proposer cannot be empty")
	}
	if title == "" {
		return types.Proposal{}, types.ErrInvalidProposal.Wrap("title cannot be empty")
	}
	if votingPeriodSecs == 0 {
		return types.Proposal{}, types.ErrInvalidProposal.Wrap("voting period cannot be zero")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	p := types.Proposal{
		Id:           k.nextProposalID(ctx),
		Proposer:     proposer,
		Title:        title,
		Created:      now,
		VotingEnds:   now + int64(votingPeriodSecs),
		QueuedUntil:  0,
		ForVotes:     math.ZeroInt(),
		AgainstVotes: math.ZeroInt(),
		Executed:     false,
	}
	if err := k.SetProposal(ctx, p); err != nil {
		return types.Proposal{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalCreated,
			sdk.NewAttribute(types.AttributeKeyProposalId, fmt.Sprintf("%d", p.Id)),
			sdk.NewAttribute(types.AttributeKeyProposer, proposer),
			sdk.NewAttribute(types.AttributeKeyTitle, title),
			sdk.NewAttribute(types.AttributeKeyVotingEnds, fmt.Sprintf("%d", p.VotingEnds)),
		),
	)

	if k.metrics != nil {
		k.metrics.ProposalsCreated.Inc()
	}

	k.Logger(sdkCtx).Info("proposal created", "id", p.Id, "proposer", proposer)
	return p, nil
}

// Vote casts a vote on a proposal. Voting after the window closes is a
// no-op that returns the proposal unchanged. The weight is caller-supplied
// and added to the chosen tally on every call; the stored receipt for the
// voter is overwritten rather than accumulated.
func (k Keeper) Vote(ctx context.Context, id uint64, voter string, support bool, weight math.Int) (types.Proposal, error) {
	if voter == "" {
		return types.Proposal{}, types.ErrInvalidVote.Wrap("voter cannot be empty")
	}
	if weight.IsNil() {
		return types.Proposal{}, types.ErrInvalidVote.Wrap("weight cannot be nil")
	}

	p, err := k.GetProposal(ctx, id)
	if err != nil {
		return types.Proposal{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	if now > p.VotingEnds {
		return p, nil
	}

	if support {
		p.ForVotes = p.ForVotes.Add(weight)
	} else {
		p.AgainstVotes = p.AgainstVotes.Add(weight)
	}

	if err := k.SetReceipt(ctx, id, types.VoteReceipt{
		Voter:   voter,
		Support: support,
		Weight:  weight,
	}); err != nil {
		return types.Proposal{}, err
	}
	if err := k.SetProposal(ctx, p); err != nil {
		return types.Proposal{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVoteCast,
			sdk.NewAttribute(types.AttributeKeyProposalId, fmt.Sprintf("%d", id)),
			sdk.NewAttribute(types.AttributeKeyVoter, voter),
			sdk.NewAttribute(types.AttributeKeySupport, fmt.Sprintf("%t", support)),
			sdk.NewAttribute(types.AttributeKeyWeight, weight.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.VotesCast.Inc()
	}

	return p, nil
}

// Queue marks a proposal for execution after the timelock, provided voting
// has ended and quorum holds. Quorum: for_votes * 10000 / total >= quorum
// bps, truncating integer division, with zero total never passing. Safe to
// call repeatedly; conditions not met leave the proposal untouched.
func (k Keeper) Queue(ctx context.Context, id uint64) (types.Proposal, error) {
	p, err := k.GetProposal(ctx, id)
	if err != nil {
		return types.Proposal{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	params := k.GetParams(ctx)

	total := p.TotalVotes()
	haveQuorum := false
	if !total.IsZero() {
		haveQuorum = p.ForVotes.MulRaw(types.MaxBps).Quo(total).GTE(params.QuorumBps)
	}

	if !haveQuorum || now < p.VotingEnds {
		return p, nil
	}

	p.QueuedUntil = now + int64(params.TimelockSeconds)
	if err := k.SetProposal(ctx, p); err != nil {
		return types.Proposal{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalQueued,
			sdk.NewAttribute(types.AttributeKeyProposalId, fmt.Sprintf("%d", id)),
			sdk.NewAttribute(types.AttributeKeyForVotes, p.ForVotes.String()),
			sdk.NewAttribute(types.AttributeKeyAgainstVotes, p.AgainstVotes.String()),
			sdk.NewAttribute(types.AttributeKeyQueuedUntil, fmt.Sprintf("%d", p.QueuedUntil)),
		),
	)

	k.Logger(sdkCtx).Info("proposal queued", "id", id, "queued_until", p.QueuedUntil)
	return p, nil
}

// Execute marks a queued proposal as executed once the timelock has
// elapsed. Idempotent: the flag is the only effect, so repeat calls after
// execution change nothing.
func (k Keeper) Execute(ctx context.Context, id uint64) (types.Proposal, error) {
	p, err := k.GetProposal(ctx, id)
	if err != nil {
		return types.Proposal{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	if p.QueuedUntil == 0 || now < p.QueuedUntil {
		return p, nil
	}
	if p.Executed {
		return p, nil
	}

	p.Executed = true
	if err := k.SetProposal(ctx, p); err != nil {
		return types.Proposal{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalExecuted,
			sdk.NewAttribute(types.AttributeKeyProposalId, fmt.Sprintf("%d", id)),
		),
	)

	if k.metrics != nil {
		k.metrics.ProposalsExecuted.Inc()
	}

	k.Logger(sdkCtx).Info("proposal executed", "id", id)
	return p, nil
}

// SetReceipt writes the receipt for a (proposal, voter) pair, overwriting
// any previous vote from the same voter.
func (k Keeper) SetReceipt(ctx context.Context, id uint64, r types.VoteReceipt) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}
	store.Set(types.GetReceiptKey(id, r.Voter), bz)
	return nil
}

// GetReceipt returns the stored receipt for a voter on a proposal.
func (k Keeper) GetReceipt(ctx context.Context, id uint64, voter string) (types.VoteReceipt, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetReceiptKey(id, voter))
	if bz == nil {
		return types.VoteReceipt{}, false
	}

	var r types.VoteReceipt
	if err := json.Unmarshal(bz, &r); err != nil {
		return types.VoteReceipt{}, false
	}
	return r, true
}

// GetReceipts returns all receipts recorded for a proposal.
func (k Keeper) GetReceipts(ctx context.Context, id uint64) ([]types.VoteReceipt, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.GetReceiptsByProposalPrefix(id))
	defer iterator.Close()

	receipts := make([]types.VoteReceipt, 0, 16)
	for ; iterator.Valid(); iterator.Next() {
		var r types.VoteReceipt
		if err := json.Unmarshal(iterator.Value(), &r); err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
	}
	return receipts, nil
}
