package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/oracle/types"
	sharedkeeper "github.com/stellar-lend/slend/x/shared/keeper"
)

// GetSources returns the registered sources for an asset in registration
// order. An unknown asset yields an empty list.
func (k Keeper) GetSources(ctx context.Context, asset string) []types.Source {
	store := k.getStore(ctx)
	bz := store.Get(types.GetSourcesKey(asset))
	if bz == nil {
		return nil
	}

	var sources []types.Source
	if err := json.Unmarshal(bz, &sources); err != nil {
		return nil
	}
	return sources
}

// setSources persists an asset's source list.
func (k Keeper) setSources(ctx context.Context, asset string, sources []types.Source) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("failed to marshal sources for %s: %w", asset, err)
	}
	store.Set(types.GetSourcesKey(asset), bz)
	return nil
}

// SetSource registers or updates a price source for an asset. Only the
// module authority may call it. Replace-by-address semantics: an existing
// entry with the same address is overwritten in place, otherwise the
// source is appended; list order is preserved either way.
func (k Keeper) SetSource(ctx context.Context, caller, asset string, source types.Source) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, caller, types.ErrUnauthorized); err != nil {
		return err
	}
	if asset == "" {
		return types.ErrInvalidAsset.Wrap("asset cannot be empty")
	}
	if source.Addr == "" {
		return types.ErrInvalidSource.Wrap("source address cannot be empty")
	}
	if source.Weight.IsNil() || source.Weight.IsNegative() {
		return types.ErrInvalidSource.Wrap("source weight must be non-negative")
	}

	sources := k.GetSources(ctx, asset)
	replaced := false
	for i := range sources {
		if sources[i].Addr == source.Addr {
			sources[i] = source
			replaced = true
			break
		}
	}
	if !replaced {
		sources = append(sources, source)
	}

	if err := k.setSources(ctx, asset, sources); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSourceSet,
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeySource, source.Addr),
			sdk.NewAttribute(types.AttributeKeyWeight, source.Weight.String()),
			sdk.NewAttribute(types.AttributeKeyLastHeartbeat, fmt.Sprintf("%d", source.LastHeartbeat)),
		),
	)

	k.Logger(sdkCtx).Info("oracle source set",
		"asset", asset, "source", source.Addr, "replaced", replaced)
	return nil
}

// RemoveSource drops every entry with the given address from an asset's
// source list. Only the module authority may call it. Zero matches is not
// an error; removal tolerates duplicates even though replace semantics
// should prevent them.
func (k Keeper) RemoveSource(ctx context.Context, caller, asset, addr string) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, caller, types.ErrUnauthorized); err != nil {
		return err
	}
	if asset == "" {
		return types.ErrInvalidAsset.Wrap("asset cannot be empty")
	}

	sources := k.GetSources(ctx, asset)
	kept := make([]types.Source, 0, len(sources))
	for _, s := range sources {
		if s.Addr != addr {
			kept = append(kept, s)
		}
	}

	if err := k.setSources(ctx, asset, kept); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSourceRemoved,
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeySource, addr),
			sdk.NewAttribute(types.AttributeKeyNumSources, fmt.Sprintf("%d", len(kept))),
		),
	)
	return nil
}

// GetSource returns a single registered source by address.
func (k Keeper) GetSource(ctx context.Context, asset, addr string) (types.Source, error) {
	for _, s := range k.GetSources(ctx, asset) {
		if s.Addr == addr {
			return s, nil
		}
	}
	return types.Source{}, types.ErrSourceNotFound.Wrapf("%s for asset %s", addr, asset)
}

// GetAllSources returns every asset's source list, for export.
func (k Keeper) GetAllSources(ctx context.Context) ([]types.AssetSources, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.SourcesKeyPrefix)
	defer iterator.Close()

	all := make([]types.AssetSources, 0, 16)
	for ; iterator.Valid(); iterator.Next() {
		var sources []types.Source
		if err := json.Unmarshal(iterator.Value(), &sources); err != nil {
			return nil, err
		}
		all = append(all, types.AssetSources{
			Asset:   string(iterator.Key()[len(types.SourcesKeyPrefix):]),
			Sources: sources,
		})
	}
	return all, nil
}
