package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/oracle/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	for _, as := range genState.Sources {
		if err := k.setSources(ctx, as.Asset, as.Sources); err != nil {
			panic(fmt.Sprintf("failed to set sources for %s: %s", as.Asset, err))
		}
	}

	if err := k.SetPerfCount(ctx, genState.PerfCount); err != nil {
		panic(fmt.Sprintf("failed to set perf count: %s", err))
	}

	k.Logger(ctx).Info("oracle module genesis initialized", "assets", len(genState.Sources))
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	sources, err := k.GetAllSources(ctx)
	if err != nil {
		panic(fmt.Sprintf("failed to export sources: %s", err))
	}

	return &types.GenesisState{
		Params:    k.GetParams(ctx),
		Sources:   sources,
		PerfCount: k.PerfCount(ctx),
	}
}
