package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/stellar-lend/slend/x/oracle/types"
	sharedkeeper "github.com/stellar-lend/slend/x/shared/keeper"
)

// GetParams gets the oracle parameters, falling back to defaults when the
// store has never been written.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams sets the oracle parameters without an authority check. Callers
// outside genesis must go through UpdateParams.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}
	store.Set(types.ParamsKey, bz)
	return nil
}

// UpdateParams replaces the oracle parameters. Only the module authority
// may call it.
func (k Keeper) UpdateParams(ctx context.Context, caller string, params types.Params) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, caller, types.ErrUnauthorized); err != nil {
		return err
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyHeartbeatTtl, fmt.Sprintf("%d", params.HeartbeatTtlSeconds)),
			sdk.NewAttribute(types.AttributeKeyMode, fmt.Sprintf("%d", params.Mode)),
		),
	)
	return nil
}

// SetHeartbeatTtl updates only the heartbeat TTL. Authority-gated.
func (k Keeper) SetHeartbeatTtl(ctx context.Context, caller string, ttlSeconds uint64) error {
	params := k.GetParams(ctx)
	params.HeartbeatTtlSeconds = ttlSeconds
	return k.UpdateParams(ctx, caller, params)
}

// SetMode updates only the aggregation mode. Authority-gated.
func (k Keeper) SetMode(ctx context.Context, caller string, mode int64) error {
	params := k.GetParams(ctx)
	params.Mode = mode
	return k.UpdateParams(ctx, caller, params)
}
