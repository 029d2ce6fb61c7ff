package keeper_test

import (
	"testing"

	sdkerrors "cosmossdk.io/errors"
	"github.com/stretchr/testify/require"

	sharedkeeper "github.com/stellar-lend/slend/x/shared/keeper"
)

var errTestUnauthorized = sdkerrors.Register("sharedtest", 2, "unauthorized")

func TestValidateAuthority(t *testing.T) {
	require.NoError(t, sharedkeeper.ValidateAuthority("slend1gov", "slend1gov", errTestUnauthorized))

	err := sharedkeeper.ValidateAuthority("slend1gov", "slend1intruder", errTestUnauthorized)
	require.ErrorIs(t, err, errTestUnauthorized)
	require.Contains(t, err.Error(), "expected slend1gov")
}
