package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/stellar-lend/slend/testutil/keeper"
)

// TestGenesisRoundTrip verifies init/export preserves proposals, receipts,
// delegations, the counter and params.
func TestGenesisRoundTrip(t *testing.T) {
	k, ctx := keepertest.GovernanceKeeper(t)

	p1, err := k.Propose(ctx, "slend1proposer", "first", 60)
	require.NoError(t, err)
	_, err = k.Propose(ctx, "slend1proposer", "second", 3600)
	require.NoError(t, err)

	_, err = k.Vote(ctx, p1.Id, "slend1voter", true, math.NewInt(1000))
	require.NoError(t, err)
	require.NoError(t, k.Delegate(ctx, "slend1alice", "slend1bob"))

	after := ctx.WithBlockTime(keepertest.GenesisTime.Add(90 * time.Second))
	_, err = k.Queue(after, p1.Id)
	require.NoError(t, err)

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Equal(t, uint64(2), exported.ProposalCounter)
	require.Len(t, exported.Proposals, 2)
	require.Len(t, exported.Receipts, 1)
	require.Len(t, exported.Delegations, 1)

	// Reimport into a fresh keeper and compare exports
	k2, ctx2 := keepertest.GovernanceKeeper(t)
	k2.InitGenesis(ctx2, *exported)
	reexported := k2.ExportGenesis(ctx2)
	require.Equal(t, exported, reexported)

	restored, err := k2.GetProposal(ctx2, p1.Id)
	require.NoError(t, err)
	require.NotEqual(t, int64(0), restored.QueuedUntil)
	require.Equal(t, math.NewInt(1000), restored.ForVotes)
}
