package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/governance/types"
)

// Keeper maintains the state of the governance module: proposals, vote
// receipts, delegation records and the quorum/timelock tunables.
type Keeper struct {
	storeKey  storetypes.StoreKey
	authority string // admin gate for parameter updates
	metrics   *Metrics
}

// NewKeeper creates a new governance Keeper instance
func NewKeeper(key storetypes.StoreKey, authority string) *Keeper {
	return &Keeper{
		storeKey:  key,
		authority: authority,
	}
}

// WithMetrics attaches prometheus metrics to the keeper. Metrics are
// optional; a nil set disables instrumentation.
func (k *Keeper) WithMetrics(m *Metrics) *Keeper {
	k.metrics = m
	return k
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// getStore returns the KVStore for the governance module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
