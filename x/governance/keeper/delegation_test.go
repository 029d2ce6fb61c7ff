package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/stellar-lend/slend/testutil/keeper"
)

// TestDelegation validates the delegation set/get surface
func TestDelegation(t *testing.T) {
	k, ctx := keepertest.GovernanceKeeper(t)

	_, found := k.GetDelegate(ctx, "slend1alice")
	require.False(t, found)

	require.NoError(t, k.Delegate(ctx, "slend1alice", "slend1bob"))

	delegate, found := k.GetDelegate(ctx, "slend1alice")
	require.True(t, found)
	require.Equal(t, "slend1bob", delegate)

	// Re-delegation overwrites
	require.NoError(t, k.Delegate(ctx, "slend1alice", "slend1carol"))
	delegate, found = k.GetDelegate(ctx, "slend1alice")
	require.True(t, found)
	require.Equal(t, "slend1carol", delegate)

	err := k.Delegate(ctx, "", "slend1bob")
	require.Error(t, err)
	err = k.Delegate(ctx, "slend1alice", "")
	require.Error(t, err)
}

// TestDelegationNotConsultedByVote pins that vote weight is the
// caller-supplied value regardless of delegation records.
func TestDelegationNotConsultedByVote(t *testing.T) {
	k, ctx := keepertest.GovernanceKeeper(t)

	require.NoError(t, k.Delegate(ctx, "slend1alice", "slend1bob"))

	p, err := k.Propose(ctx, "slend1proposer", "proposal", 60)
	require.NoError(t, err)

	got, err := k.Vote(ctx, p.Id, "slend1alice", true, math.NewInt(25))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(25), got.ForVotes)

	r, found := k.GetReceipt(ctx, p.Id, "slend1alice")
	require.True(t, found)
	require.Equal(t, "slend1alice", r.Voter)
}
