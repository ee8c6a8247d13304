package comb

// Left runs p then q, keeping p's value and discarding q's (spec.md §4.7:
// left(p, q) = bind(p, x ↦ map(q, _ ↦ x))).
func Left[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, A] {
	return Bind(p, func(a A) Parser[T, A] {
		return Map(q, func(B) A { return a })
	})
}

// Right runs p then q, discarding p's value and keeping q's (spec.md §4.7:
// right(p, q) = bind(p, _ ↦ q)).
func Right[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, B] {
	return Bind(p, func(A) Parser[T, B] { return q })
}

// Both runs p then q and pairs their values.
func Both[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, PairContainer[A, B]] {
	return Bind(p, func(a A) Parser[T, PairContainer[A, B]] {
		return Map(q, func(b B) PairContainer[A, B] {
			return NewPairContainer(a, b)
		})
	})
}

// Between parses open, then p, then close, keeping only p's value.
// Between(p, open, close) = Right(open, Left(p, close)).
func Between[T, OO, A, OC any](p Parser[T, A], open Parser[T, OO], closeP Parser[T, OC]) Parser[T, A] {
	return Right(open, Left(p, closeP))
}

// Pipe2 applies p1 then p2 in sequence and projects their values through f.
// Pipe2/Pipe3/Pipe4 are the curried n-ary equivalents of nested Bind calls
// spec.md §4.7 describes generically as `pipe`; Go's lack of variadic
// generics over heterogeneous types means each arity needs its own function.
func Pipe2[T, A, B, R any](p1 Parser[T, A], p2 Parser[T, B], f func(A, B) R) Parser[T, R] {
	return Bind(p1, func(a A) Parser[T, R] {
		return Map(p2, func(b B) R { return f(a, b) })
	})
}

// Pipe3 sequences three parsers and projects their values through f.
func Pipe3[T, A, B, C, R any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], f func(A, B, C) R) Parser[T, R] {
	return Bind(p1, func(a A) Parser[T, R] {
		return Bind(p2, func(b B) Parser[T, R] {
			return Map(p3, func(c C) R { return f(a, b, c) })
		})
	})
}

// Pipe4 sequences four parsers and projects their values through f.
func Pipe4[T, A, B, C, D, R any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], f func(A, B, C, D) R) Parser[T, R] {
	return Bind(p1, func(a A) Parser[T, R] {
		return Bind(p2, func(b B) Parser[T, R] {
			return Bind(p3, func(c C) Parser[T, R] {
				return Map(p4, func(d D) R { return f(a, b, c, d) })
			})
		})
	})
}

// Preceded parses and discards a result from the prefix parser, then parses
// and returns a result from the main parser. Kept as a teacher-named alias
// of Right for call sites migrating from gomme (see DESIGN.md).
func Preceded[T, OP, A any](prefix Parser[T, OP], parser Parser[T, A]) Parser[T, A] {
	return Right(prefix, parser)
}

// Terminated parses a result from the main parser, then parses and discards
// a result from the suffix parser. Teacher-named alias of Left.
func Terminated[T, A, OS any](parser Parser[T, A], suffix Parser[T, OS]) Parser[T, A] {
	return Left(parser, suffix)
}

// Delimited parses and discards prefix, then parser, then discards suffix.
// Teacher-named alias of Between.
func Delimited[T, OP, A, OS any](prefix Parser[T, OP], parser Parser[T, A], suffix Parser[T, OS]) Parser[T, A] {
	return Between(parser, prefix, suffix)
}

// Pair applies two parsers in sequence and pairs their values.
// Teacher-named alias of Both.
func Pair[T, L, R any](left Parser[T, L], right Parser[T, R]) Parser[T, PairContainer[L, R]] {
	return Both(left, right)
}

// SeparatedPair applies left, then separator (discarded), then right, and
// pairs left's and right's values.
func SeparatedPair[T, L, S, R any](left Parser[T, L], separator Parser[T, S], right Parser[T, R]) Parser[T, PairContainer[L, R]] {
	return Both(Left(left, separator), right)
}

// Sequence applies parsers in order; all must succeed, and any Failure or
// Error short-circuits and is returned as-is (with the Failure's stream
// reset to the original input, per the commit rule documented on Bind).
func Sequence[T, R any](parsers ...Parser[T, R]) Parser[T, []R] {
	return func(s Stream[T]) Reply[T, []R] {
		outputs := make([]R, 0, len(parsers))
		var messages []ErrorMessage
		remaining := s
		for _, p := range parsers {
			r := p(remaining)
			messages = append(messages, r.Messages...)
			switch r.Kind {
			case KindSuccess:
				outputs = append(outputs, r.Value)
				remaining = r.Stream
			case KindFailure:
				return Failure[T, []R](s, messages)
			default:
				return Error[T, []R](r.Stream, r.Fatal, messages)
			}
		}
		return Success[T, []R](remaining, outputs, messages)
	}
}
