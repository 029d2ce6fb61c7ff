package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/governance/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	k.SetProposalCounter(ctx, genState.ProposalCounter)

	for _, p := range genState.Proposals {
		if err := k.SetProposal(ctx, p); err != nil {
			panic(fmt.Sprintf("failed to set proposal %d: %s", p.Id, err))
		}
	}

	for _, r := range genState.Receipts {
		if err := k.SetReceipt(ctx, r.ProposalId, r.Receipt); err != nil {
			panic(fmt.Sprintf("failed to set receipt for proposal %d: %s", r.ProposalId, err))
		}
	}

	for _, d := range genState.Delegations {
		if err := k.Delegate(ctx, d.Delegator, d.Delegate); err != nil {
			panic(fmt.Sprintf("failed to set delegation for %s: %s", d.Delegator, err))
		}
	}

	k.Logger(ctx).Info("governance module genesis initialized",
		"proposals", len(genState.Proposals),
		"counter", genState.ProposalCounter,
	)
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	proposals, err := k.GetProposals(ctx)
	if err != nil {
		panic(fmt.Sprintf("failed to export proposals: %s", err))
	}

	receipts := make([]types.GenesisReceipt, 0, len(proposals))
	for _, p := range proposals {
		rs, err := k.GetReceipts(ctx, p.Id)
		if err != nil {
			panic(fmt.Sprintf("failed to export receipts for proposal %d: %s", p.Id, err))
		}
		for _, r := range rs {
			receipts = append(receipts, types.GenesisReceipt{ProposalId: p.Id, Receipt: r})
		}
	}

	delegations, err := k.GetDelegations(ctx)
	if err != nil {
		panic(fmt.Sprintf("failed to export delegations: %s", err))
	}

	return &types.GenesisState{
		Params:          k.GetParams(ctx),
		ProposalCounter: k.GetProposalCounter(ctx),
		Proposals:       proposals,
		Receipts:        receipts,
		Delegations:     delegations,
	}
}
