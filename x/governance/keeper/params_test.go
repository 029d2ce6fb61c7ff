package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/stellar-lend/slend/testutil/keeper"
	"github.com/stellar-lend/slend/x/governance/types"
)

// TestParamsDefaults verifies first-read defaults
func TestParamsDefaults(t *testing.T) {
	k, ctx := keepertest.GovernanceKeeper(t)

	params := k.GetParams(ctx)
	require.Equal(t, math.NewInt(types.DefaultQuorumBps), params.QuorumBps)
	require.Equal(t, uint64(types.DefaultTimelockSeconds), params.TimelockSeconds)
}

// TestUpdateParamsAuthority verifies the admin gate on parameter updates
func TestUpdateParamsAuthority(t *testing.T) {
	k, ctx := keepertest.GovernanceKeeper(t)

	params := types.Params{QuorumBps: math.NewInt(2500), TimelockSeconds: 120}

	err := k.UpdateParams(ctx, "slend1intruder", params)
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.Equal(t, math.NewInt(types.DefaultQuorumBps), k.GetParams(ctx).QuorumBps)

	require.NoError(t, k.UpdateParams(ctx, keepertest.Authority(), params))
	got := k.GetParams(ctx)
	require.Equal(t, math.NewInt(2500), got.QuorumBps)
	require.Equal(t, uint64(120), got.TimelockSeconds)

	err = k.UpdateParams(ctx, keepertest.Authority(), types.Params{QuorumBps: math.NewInt(10001)})
	require.ErrorIs(t, err, types.ErrInvalidParams)
}

// TestSetQuorumAndTimelock verifies the single-field setters feed the
// queue gate.
func TestSetQuorumAndTimelock(t *testing.T) {
	k, ctx := keepertest.GovernanceKeeper(t)

	require.NoError(t, k.SetQuorumBps(ctx, keepertest.Authority(), math.NewInt(5000)))
	require.NoError(t, k.SetTimelock(ctx, keepertest.Authority(), 600))

	p, err := k.Propose(ctx, "slend1proposer", "proposal", 60)
	require.NoError(t, err)
	// 40% in favor: below the raised 50% quorum
	_, err = k.Vote(ctx, p.Id, "a", true, math.NewInt(40))
	require.NoError(t, err)
	_, err = k.Vote(ctx, p.Id, "b", false, math.NewInt(60))
	require.NoError(t, err)

	after := ctx.WithBlockTime(keepertest.GenesisTime.Add(time.Hour))
	got, err := k.Queue(after, p.Id)
	require.NoError(t, err)
	require.Equal(t, int64(0), got.QueuedUntil)

	// Push it over quorum and confirm the new timelock applies
	_, err = k.Vote(ctx, p.Id, "c", true, math.NewInt(60))
	require.NoError(t, err)
	got, err = k.Queue(after, p.Id)
	require.NoError(t, err)
	require.Equal(t, keepertest.GenesisTime.Add(time.Hour).Unix()+600, got.QueuedUntil)
}
