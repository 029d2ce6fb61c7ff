package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/oracle/types"
)

// Keeper maintains the state of the oracle module: per-asset source lists,
// the heartbeat/aggregation tunables and the diagnostic counter. External
// price contracts are reached through the injected resolver.
type Keeper struct {
	storeKey  storetypes.StoreKey
	resolver  types.PriceClientResolver
	authority string // admin gate for source and parameter mutations
	metrics   *Metrics
}

// NewKeeper creates a new oracle Keeper instance
func NewKeeper(key storetypes.StoreKey, resolver types.PriceClientResolver, authority string) *Keeper {
	return &Keeper{
		storeKey:  key,
		resolver:  resolver,
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

// getStore returns the KVStore for the oracle module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
