package comb

// Choice implements the predictive alternation rule of spec.md §4.4: try p;
// on Success, return it; on Failure, try q against the ORIGINAL stream; on
// Error, return p's Error without trying q at all. Alternatives never
// recover past an Error, only past a Failure.
//
// Grounded on the teacher's Alternative, with the Failure/Error distinction
// its generic rewrite lost restored: see DESIGN.md's branch.go entry.
func Choice[T, R any](p, q Parser[T, R]) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		r := p(s)
		if r.Kind != KindFailure {
			return r
		}
		return q(s)
	}
}

// Or is an infix-flavored alias for Choice, for call sites that read better
// as p.Or(q)-style chaining via a free function: Or(p, q) == Choice(p, q).
func Or[T, R any](p, q Parser[T, R]) Parser[T, R] {
	return Choice(p, q)
}

// ChoiceAll generalizes Choice to an arbitrary number of candidates, tried
// in order; the first Success or Error wins. ChoiceAll with no parsers is
// Fail(), per spec.md §4.4 ("choice(empty) is fail()").
func ChoiceAll[T, R any](parsers ...Parser[T, R]) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		if len(parsers) == 0 {
			return Failure[T, R](s, nil)
		}
		var lastFailure Reply[T, R]
		for _, p := range parsers {
			r := p(s)
			if r.Kind != KindFailure {
				return r
			}
			lastFailure = r
		}
		return lastFailure
	}
}
