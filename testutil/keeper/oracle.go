package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/oracle/keeper"
	"github.com/stellar-lend/slend/x/oracle/types"
)

// StaticResolver is a PriceClientResolver over a fixed address->client map.
type StaticResolver struct {
	Clients map[string]types.PriceClient
}

// Resolve returns the client registered for addr.
func (r *StaticResolver) Resolve(addr string) (types.PriceClient, error) {
	client, ok := r.Clients[addr]
	if !ok {
		return nil, fmt.Errorf("no client for %s", addr)
	}
	return client, nil
}

// StaticPriceClient always quotes the same price.
type StaticPriceClient struct {
	Price math.Int
}

func (c StaticPriceClient) GetPrice(_ context.Context, _ string) (math.Int, error) {
	return c.Price, nil
}

// FailingPriceClient always errors, standing in for a reverting source
// contract.
type FailingPriceClient struct{}

func (FailingPriceClient) GetPrice(_ context.Context, _ string) (math.Int, error) {
	return math.Int{}, fmt.Errorf("source reverted")
}

// OracleKeeper creates a test keeper for the oracle module backed by an
// in-memory store. The returned resolver starts empty; tests register
// clients on it before fetching.
func OracleKeeper(t testing.TB) (*keeper.Keeper, *StaticResolver, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := testContext(t, storeKey)
	resolver := &StaticResolver{Clients: make(map[string]types.PriceClient)}
	k := keeper.NewKeeper(storeKey, resolver, Authority())
	k.InitGenesis(ctx, *types.DefaultGenesis())
	return k, resolver, ctx
}
