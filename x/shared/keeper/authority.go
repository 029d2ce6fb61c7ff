// Package keeper provides shared keeper utilities for the slend modules.
package keeper

import (
	sdkerrors "cosmossdk.io/errors"
)

// ValidateAuthority checks that the provided caller matches the expected
// authority. This is the admin gate for privileged mutations such as
// parameter updates and oracle source management.
//
// Parameters:
//   - expected: the expected authority address (typically keeper.authority)
//   - actual: the caller address supplied with the operation
//   - unauthorized: the module's registered unauthorized sentinel
//
// Returns the wrapped sentinel on mismatch, nil otherwise.
func ValidateAuthority(expected, actual string, unauthorized *sdkerrors.Error) error {
	if expected != actual {
		return unauthorized.Wrapf(
			"invalid authority; expected %s, got %s",
			expected,
			actual,
		)
	}
	return nil
}
