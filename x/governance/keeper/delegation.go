package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/governance/types"
)

// Delegate records a delegation from one address to another. The record is
// a plain key-value mapping; vote tallying does not consult it.
func (k Keeper) Delegate(ctx context.Context, from, to string) error {
	if from == "" || to == "" {
		return types.ErrInvalidDelegation.Wrap("delegator and delegate cannot be empty")
	}

	store := k.getStore(ctx)
	store.Set(types.GetDelegationKey(from), []byte(to))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDelegateSet,
			sdk.NewAttribute(types.AttributeKeyDelegator, from),
			sdk.NewAttribute(types.AttributeKeyDelegate, to),
		),
	)
	return nil
}

// GetDelegate returns the delegate recorded for an address, if any.
func (k Keeper) GetDelegate(ctx context.Context, from string) (string, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetDelegationKey(from))
	if bz == nil {
		return "", false
	}
	return string(bz), true
}

// GetDelegations returns all delegation records.
func (k Keeper) GetDelegations(ctx context.Context) ([]types.Delegation, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.DelegationKeyPrefix)
	defer iterator.Close()

	delegations := make([]types.Delegation, 0, 16)
	for ; iterator.Valid(); iterator.Next() {
		delegations = append(delegations, types.Delegation{
			Delegator: string(iterator.Key()[len(types.DelegationKeyPrefix):]),
			Delegate:  string(iterator.Value()),
		})
	}
	return delegations, nil
}
