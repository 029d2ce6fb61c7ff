package keeper

import (
	"testing"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/governance/keeper"
	"github.com/stellar-lend/slend/x/governance/types"
)

// GovernanceKeeper creates a test keeper for the governance module backed
// by an in-memory store.
func GovernanceKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := testContext(t, storeKey)
	k := keeper.NewKeeper(storeKey, Authority())
	k.InitGenesis(ctx, *types.DefaultGenesis())
	return k, ctx
}
