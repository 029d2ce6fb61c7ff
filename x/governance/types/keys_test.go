package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stellar-lend/slend/x/governance/types"
)

// TestKeyPrefixesDistinct verifies the structured key builders cannot
// collide across entity kinds or ids.
func TestKeyPrefixesDistinct(t *testing.T) {
	prefixes := [][]byte{
		types.ParamsKey,
		types.ProposalCounterKey,
		types.ProposalKeyPrefix,
		types.ReceiptKeyPrefix,
		types.DelegationKeyPrefix,
	}
	for i := range prefixes {
		require.Equal(t, types.ModuleNamespace, prefixes[i][0])
		for j := i + 1; j < len(prefixes); j++ {
			require.False(t, bytes.Equal(prefixes[i], prefixes[j]))
		}
	}

	require.NotEqual(t, types.GetProposalKey(1), types.GetProposalKey(2))

	// Receipt keys separate id and voter so adjacent ids cannot alias
	a := types.GetReceiptKey(1, "voterx")
	b := types.GetReceiptKey(1, "votery")
	require.False(t, bytes.Equal(a, b))
	require.True(t, bytes.HasPrefix(a, types.GetReceiptsByProposalPrefix(1)))
	require.False(t, bytes.HasPrefix(a, types.GetReceiptsByProposalPrefix(2)))
}
