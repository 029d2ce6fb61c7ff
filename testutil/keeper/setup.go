// Package keeper provides in-memory keeper fixtures for module tests.
package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"
)

// GenesisTime is the block time every fixture context starts at. Tests
// advance it with ctx.WithBlockTime.
var GenesisTime = time.Unix(1_700_000_000, 0).UTC()

// Authority is the module authority used by all fixtures.
func Authority() string {
	return authtypes.NewModuleAddress("gov").String()
}

// testContext mounts a single IAVL store over an in-memory DB and returns
// a context positioned at GenesisTime.
func testContext(t testing.TB, storeKey storetypes.StoreKey) sdk.Context {
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	return sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())
}
