package keeper

import (
	"context"
	"fmt"
	"sort"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/oracle/types"
)

// FetchPrices collects quotes from every live source registered for an
// asset. A source is skipped when its heartbeat is older than the TTL
// (saturating: future heartbeats are never stale), when its price call
// fails, or when it reports a non-positive value. Per-source call failures
// are isolated rather than aborting the fetch; only a total outage (at
// least one live source and zero successful calls) surfaces as
// ErrExternalCallFailed.
func (k Keeper) FetchPrices(ctx context.Context, asset string) ([]math.Int, error) {
	if asset == "" {
		return nil, types.ErrInvalidAsset.Wrap("asset cannot be empty")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	params := k.GetParams(ctx)
	sources := k.GetSources(ctx, asset)

	prices := make([]math.Int, 0, len(sources))
	live := 0
	failed := 0
	for _, s := range sources {
		if s.Stale(now, params.HeartbeatTtlSeconds) {
			if k.metrics != nil {
				k.metrics.StaleSourcesSkipped.Inc()
			}
			continue
		}
		live++

		price, err := k.callSource(ctx, s.Addr, asset)
		if err != nil {
			failed++
			k.Logger(sdkCtx).Error("price source call failed",
				"asset", asset, "source", s.Addr, "error", err)
			sdkCtx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventTypeSourceCallFailed,
					sdk.NewAttribute(types.AttributeKeyAsset, asset),
					sdk.NewAttribute(types.AttributeKeySource, s.Addr),
					sdk.NewAttribute(types.AttributeKeyReason, err.Error()),
				),
			)
			if k.metrics != nil {
				k.metrics.SourceCallFailures.Inc()
			}
			continue
		}

		if !price.IsPositive() {
			continue
		}
		prices = append(prices, price)
	}

	if live > 0 && failed == live {
		return nil, types.ErrExternalCallFailed.Wrapf(
			"all %d live sources failed for asset %s", live, asset)
	}
	return prices, nil
}

// callSource resolves and invokes a single source's get_price capability.
func (k Keeper) callSource(ctx context.Context, addr, asset string) (math.Int, error) {
	if k.resolver == nil {
		return math.Int{}, types.ErrExternalCallFailed.Wrap("no price client resolver configured")
	}
	client, err := k.resolver.Resolve(addr)
	if err != nil {
		return math.Int{}, types.ErrExternalCallFailed.Wrapf("resolve %s: %s", addr, err)
	}
	price, err := client.GetPrice(ctx, asset)
	if err != nil {
		return math.Int{}, types.ErrExternalCallFailed.Wrapf("get_price from %s: %s", addr, err)
	}
	if price.IsNil() {
		return math.ZeroInt(), nil
	}
	return price, nil
}

// AggregatePrice fetches live prices for an asset and reduces them to one
// value per the configured mode. The performance counter is incremented on
// every call, fruitful or not. Returns ErrNoHealthySources when no live
// source produced a positive price.
func (k Keeper) AggregatePrice(ctx context.Context, asset string) (math.Int, error) {
	prices, fetchErr := k.FetchPrices(ctx, asset)
	k.incPerfCount(ctx)
	if fetchErr != nil {
		return math.Int{}, fetchErr
	}

	if len(prices) == 0 {
		return math.Int{}, types.ErrNoHealthySources.Wrapf("asset %s", asset)
	}

	params := k.GetParams(ctx)
	var aggregated math.Int
	if params.Mode == types.ModeMean {
		aggregated = meanPrice(prices)
	} else {
		aggregated = medianWithTrim(prices)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceAggregated,
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeyPrice, aggregated.String()),
			sdk.NewAttribute(types.AttributeKeyMode, fmt.Sprintf("%d", params.Mode)),
			sdk.NewAttribute(types.AttributeKeyNumSources, fmt.Sprintf("%d", len(prices))),
		),
	)

	if k.metrics != nil {
		if f, err := aggregated.ToLegacyDec().Float64(); err == nil {
			k.metrics.AggregatedPrice.WithLabelValues(asset).Set(f)
		}
	}

	return aggregated, nil
}

// meanPrice is the truncating arithmetic mean of the collected prices.
func meanPrice(prices []math.Int) math.Int {
	sum := math.ZeroInt()
	for _, p := range prices {
		sum = sum.Add(p)
	}
	return sum.QuoRaw(int64(len(prices)))
}

// medianWithTrim sorts the prices ascending and, when there are at least
// three, drops a single occurrence of the minimum and of the maximum
// before taking the median of what remains. The median of an even-length
// span is the truncating average of its two middle elements.
func medianWithTrim(prices []math.Int) math.Int {
	sorted := make([]math.Int, len(prices))
	copy(sorted, prices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LT(sorted[j])
	})

	start, end := 0, len(sorted)
	if len(sorted) >= 3 {
		start, end = 1, len(sorted)-1
	}

	span := end - start
	if span == 1 {
		return sorted[start]
	}

	mid := start + span/2
	if span%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).QuoRaw(2)
}

// incPerfCount bumps the stored diagnostic counter and mirrors it to the
// prometheus counter when metrics are attached.
func (k Keeper) incPerfCount(ctx context.Context) {
	store := k.getStore(ctx)
	count := k.PerfCount(ctx).Add(math.OneInt())
	bz, err := count.Marshal()
	if err != nil {
		return
	}
	store.Set(types.PerfCounterKey, bz)

	if k.metrics != nil {
		k.metrics.Aggregations.Inc()
	}
}

// PerfCount returns the number of aggregation calls made so far.
func (k Keeper) PerfCount(ctx context.Context) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.PerfCounterKey)
	if bz == nil {
		return math.ZeroInt()
	}

	var count math.Int
	if err := count.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return count
}

// SetPerfCount overwrites the diagnostic counter. Used by genesis.
func (k Keeper) SetPerfCount(ctx context.Context, count math.Int) error {
	bz, err := count.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal perf count: %w", err)
	}
	k.getStore(ctx).Set(types.PerfCounterKey, bz)
	return nil
}
