package keeper

// Aggregation internals exposed for tests.
var (
	MedianWithTrim = medianWithTrim
	MeanPrice      = meanPrice
)
