package comb

// Chainl parses one p (the head), then a possibly empty sequence of
// sep-separated ps (a tail), and folds left with f starting from
// f(seed, head) over the tail (spec.md §4.9): the result is
// left-associative, e.g. parsing "1+2+3" as f(f(f(seed,1),2),3). The tail
// is not required to be non-empty: a lone head with no separator after it
// succeeds with f(seed, head). The other chain functions below accept a
// lone head the same way.
//
// No teacher analogue exists for chainl/chainr (gomme has none); this is
// built directly from spec.md §4.9 and scenario S7, using SepBy-shaped
// plumbing (a head parser then a Many of sep-then-p) as its building block.
func Chainl[T, R, S any](p Parser[T, R], sep Parser[T, S], seed R, f func(R, R) R) Parser[T, R] {
	return Bind(p, func(head R) Parser[T, R] {
		return Map(Many(Right(sep, p), 0), func(tail []R) R {
			acc := f(seed, head)
			for _, v := range tail {
				acc = f(acc, v)
			}
			return acc
		})
	})
}

// ChainlSeed is Chainl with the seed derived from the head rather than
// supplied up front: acc starts at head itself (f(head, tail[0]), ...).
func ChainlSeed[T, R, S any](p Parser[T, R], sep Parser[T, S], f func(R, R) R) Parser[T, R] {
	return Bind(p, func(head R) Parser[T, R] {
		return Map(Many(Right(sep, p), 0), func(tail []R) R {
			acc := head
			for _, v := range tail {
				acc = f(acc, v)
			}
			return acc
		})
	})
}

// Chainr parses a head and a tail the same way Chainl does, but folds right:
// the rightmost element combines with seed first, e.g. parsing "1+2+3" with
// a right fold computes f(1, f(2, f(3, seed))).
func Chainr[T, R, S any](p Parser[T, R], sep Parser[T, S], seed R, f func(R, R) R) Parser[T, R] {
	return Bind(p, func(head R) Parser[T, R] {
		return Map(Many(Right(sep, p), 0), func(tail []R) R {
			if len(tail) == 0 {
				return f(head, seed)
			}
			elems := append([]R{head}, tail...)
			acc := f(elems[len(elems)-1], seed)
			for i := len(elems) - 2; i >= 0; i-- {
				acc = f(elems[i], acc)
			}
			return acc
		})
	})
}

// ChainrSeed is Chainr with the seed derived from the tail's last element
// rather than supplied up front.
func ChainrSeed[T, R, S any](p Parser[T, R], sep Parser[T, S], f func(R, R) R) Parser[T, R] {
	return Bind(p, func(head R) Parser[T, R] {
		return Map(Many(Right(sep, p), 0), func(tail []R) R {
			elems := append([]R{head}, tail...)
			acc := elems[len(elems)-1]
			for i := len(elems) - 2; i >= 0; i-- {
				acc = f(elems[i], acc)
			}
			return acc
		})
	})
}

// Unit is the canonical empty-value type for parsers run purely for their
// side effect of consuming input (a separator, a keyword), matching
// spec.md's own use of "unit" in S7 (token('+').right(succeed(unit))).
type Unit = struct{}

// Chainl1 is the "three-argument variant where f has the same input and
// output type" spec.md §4.9 calls out alongside the seed-selector variant —
// for a Unit separator it is exactly ChainlSeed. S7's worked example
// ("1+2+3" folded left to "123") is this variant.
func Chainl1[T, R any](p Parser[T, R], sep Parser[T, Unit], f func(R, R) R) Parser[T, R] {
	return ChainlSeed(p, sep, f)
}

// Chainr1 is Chainl1's right-associative counterpart.
func Chainr1[T, R any](p Parser[T, R], sep Parser[T, Unit], f func(R, R) R) Parser[T, R] {
	return ChainrSeed(p, sep, f)
}
