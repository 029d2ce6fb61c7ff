package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Oracle module sentinel errors
var (
	ErrUnauthorized       = sdkerrors.Register(ModuleName, 2, "unauthorized")
	ErrInvalidAsset       = sdkerrors.Register(ModuleName, 3, "invalid asset")
	ErrInvalidSource      = sdkerrors.Register(ModuleName, 4, "invalid source")
	ErrSourceNotFound     = sdkerrors.Register(ModuleName, 5, "source not found")
	ErrInvalidParams      = sdkerrors.Register(ModuleName, 6, "invalid params")
	ErrExternalCallFailed = sdkerrors.Register(ModuleName, 7, "external price call failed")
	ErrNoHealthySources   = sdkerrors.Register(ModuleName, 8, "no healthy price sources")
)
