package keeper_test

import (
	"sort"
	"testing"

	"cosmossdk.io/math"
	"pgregory.net/rapid"

	"github.com/stellar-lend/slend/x/oracle/keeper"
)

// TestMedianWithTrimProperties checks structural properties of the
// median-with-trim reduction over arbitrary positive price lists.
func TestMedianWithTrimProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Int64Range(1, 1_000_000_000), 1, 50).Draw(t, "prices")

		prices := make([]math.Int, len(raw))
		for i, v := range raw {
			prices[i] = math.NewInt(v)
		}

		got := keeper.MedianWithTrim(prices)

		// Property: the result never leaves the observed price range
		sorted := append([]int64(nil), raw...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		if got.LT(math.NewInt(sorted[0])) || got.GT(math.NewInt(sorted[len(sorted)-1])) {
			t.Fatalf("median %s outside range [%d, %d]", got, sorted[0], sorted[len(sorted)-1])
		}

		// Property: with fewer than 3 prices no trimming happens, so the
		// result is the plain median of the full list
		if len(raw) == 1 && !got.Equal(math.NewInt(raw[0])) {
			t.Fatalf("single price must aggregate to itself, got %s", got)
		}
		if len(raw) == 2 {
			want := math.NewInt(sorted[0]).Add(math.NewInt(sorted[1])).QuoRaw(2)
			if !got.Equal(want) {
				t.Fatalf("two-price median: want %s, got %s", want, got)
			}
		}

		// Property: with >= 3 prices the trimmed extremes can never be
		// the result unless they repeat inside the span
		if len(raw) >= 3 {
			trimmed := sorted[1 : len(sorted)-1]
			if got.LT(math.NewInt(trimmed[0])) || got.GT(math.NewInt(trimmed[len(trimmed)-1])) {
				t.Fatalf("median %s outside trimmed range [%d, %d]", got, trimmed[0], trimmed[len(trimmed)-1])
			}
		}

		// Property: aggregation must not mutate its input
		for i, v := range raw {
			if !prices[i].Equal(math.NewInt(v)) {
				t.Fatal("input slice mutated by aggregation")
			}
		}
	})
}

// TestMeanProperties checks the truncating mean stays within the price
// range and matches the integer arithmetic definition.
func TestMeanProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Int64Range(1, 1_000_000), 1, 50).Draw(t, "prices")

		prices := make([]math.Int, len(raw))
		sum := int64(0)
		minV, maxV := raw[0], raw[0]
		for i, v := range raw {
			prices[i] = math.NewInt(v)
			sum += v
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}

		got := keeper.MeanPrice(prices)
		want := math.NewInt(sum / int64(len(raw)))
		if !got.Equal(want) {
			t.Fatalf("mean: want %s, got %s", want, got)
		}
		if got.LT(math.NewInt(minV)) || got.GT(math.NewInt(maxV)) {
			t.Fatalf("mean %s outside range [%d, %d]", got, minV, maxV)
		}
	})
}
