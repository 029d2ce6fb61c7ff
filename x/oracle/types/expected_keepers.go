package types

import (
	"context"

	"cosmossdk.io/math"
)

// PriceClient is the capability exposed by every registered price source:
// a synchronous quote for an asset. Implementations are untrusted; the
// aggregator isolates their failures.
type PriceClient interface {
	GetPrice(ctx context.Context, asset string) (math.Int, error)
}

// PriceClientResolver maps a registered source address to its PriceClient.
// It is the boundary between the aggregator and external price contracts;
// the keeper takes one at construction the way other modules take expected
// keepers.
type PriceClientResolver interface {
	Resolve(addr string) (PriceClient, error)
}
