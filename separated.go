package comb

// SepBy parses at least n occurrences of p separated by sep (spec.md §4.8):
// p, then Many(Right(sep, p), max(n-1, 0)), flattened into one slice.
//
// Grounded on the teacher's SeparatedList0/SeparatedList1 (multi.go),
// generalized from the fixed 0/1 minimums to an arbitrary n.
func SepBy[T, R, S any](p Parser[T, R], n uint, sep Parser[T, S]) Parser[T, []R] {
	return func(s Stream[T]) Reply[T, []R] {
		first := p(s)
		if first.Kind != KindSuccess {
			if first.Kind == KindError {
				return Error[T, []R](first.Stream, first.Fatal, first.Messages)
			}
			if n == 0 {
				return Success[T, []R](s, nil, first.Messages)
			}
			return Failure[T, []R](s, first.Messages)
		}

		restMin := uint(0)
		if n > 0 {
			restMin = n - 1
		}
		rest := Many(Right(sep, p), restMin)(first.Stream)

		messages := append(append([]ErrorMessage{}, first.Messages...), rest.Messages...)
		if rest.Kind != KindSuccess {
			if rest.Kind == KindError {
				return Error[T, []R](rest.Stream, rest.Fatal, messages)
			}
			return Failure[T, []R](s, messages)
		}

		outputs := append([]R{first.Value}, rest.Value...)
		return Success[T, []R](rest.Stream, outputs, messages)
	}
}

// EndBy parses at least n occurrences of p, each immediately terminated by
// sep: Many(Left(p, sep), n).
func EndBy[T, R, S any](p Parser[T, R], n uint, sep Parser[T, S]) Parser[T, []R] {
	return Many(Left(p, sep), n)
}

// SepEndBy parses SepBy(p, n, sep) followed by an optional trailing sep,
// the common "trailing comma allowed" shape.
func SepEndBy[T, R, S any](p Parser[T, R], n uint, sep Parser[T, S]) Parser[T, []R] {
	return Left(SepBy(p, n, sep), Maybe(sep))
}
