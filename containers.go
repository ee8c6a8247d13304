package comb

// PairContainer holds the pair of results produced by Pair/SeparatedPair.
type PairContainer[L, R any] struct {
	Left  L
	Right R
}

// NewPairContainer instantiates a PairContainer.
func NewPairContainer[L, R any](left L, right R) PairContainer[L, R] {
	return PairContainer[L, R]{Left: left, Right: right}
}
