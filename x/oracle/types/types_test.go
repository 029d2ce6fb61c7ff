package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/stellar-lend/slend/x/oracle/types"
)

// TestParamsValidate covers aggregation mode bounds
func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
	require.NoError(t, types.Params{HeartbeatTtlSeconds: 0, Mode: types.ModeMean}.Validate())
	require.Error(t, types.Params{Mode: 2}.Validate())
	require.Error(t, types.Params{Mode: -1}.Validate())
}

// TestGenesisValidate covers structural genesis checks
func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())

	valid := types.GenesisState{
		Params:    types.DefaultParams(),
		PerfCount: math.ZeroInt(),
		Sources: []types.AssetSources{{
			Asset: "XLM/USD",
			Sources: []types.Source{
				types.NewSource("slend1feed1", math.NewInt(1), 100),
				types.NewSource("slend1feed2", math.NewInt(2), 100),
			},
		}},
	}
	require.NoError(t, valid.Validate())

	dupAsset := valid
	dupAsset.Sources = append(dupAsset.Sources, valid.Sources[0])
	require.Error(t, dupAsset.Validate())

	dupAddr := valid
	dupAddr.Sources = []types.AssetSources{{
		Asset: "XLM/USD",
		Sources: []types.Source{
			types.NewSource("slend1feed1", math.NewInt(1), 100),
			types.NewSource("slend1feed1", math.NewInt(2), 100),
		},
	}}
	require.Error(t, dupAddr.Validate())

	negCount := valid
	negCount.PerfCount = math.NewInt(-1)
	require.Error(t, negCount.Validate())
}

// TestGetSourcesKey verifies per-asset keys stay inside the module
// namespace and apart from each other.
func TestGetSourcesKey(t *testing.T) {
	a := types.GetSourcesKey("XLM/USD")
	b := types.GetSourcesKey("BTC/USD")
	require.NotEqual(t, a, b)
	require.Equal(t, types.ModuleNamespace, a[0])
	require.Equal(t, types.SourcesKeyPrefix, a[:len(types.SourcesKeyPrefix)])
}
