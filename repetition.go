package comb

// Many applies p repeatedly, requiring at least n successes, and greedily
// consuming beyond that until the first non-Success (spec.md §4.6). An
// Error at any step aborts the whole combinator with that Error. If fewer
// than n successes occurred before the first non-Success, Many fails:
// Failure if the last outcome was Failure, Error if it was Error.
//
// Grounded on the teacher's Many0/Many1 (multi.go), generalized from the
// fixed 0/1 minimums to an arbitrary n, and from "stop on non-advancing
// success" infinite-loop guards to spec.md's simpler "stop on first
// non-Success" contract (the host grammar, not this combinator, is
// responsible for not supplying a parser that can succeed on empty input
// forever — spec.md places no such guard in its §4.6 contract).
func Many[T, R any](p Parser[T, R], n uint) Parser[T, []R] {
	return func(s Stream[T]) Reply[T, []R] {
		var (
			outputs  []R
			messages []ErrorMessage
		)
		remaining := s
		for {
			r := p(remaining)
			messages = append(messages, r.Messages...)
			if r.Kind == KindError {
				return Error[T, []R](r.Stream, r.Fatal, messages)
			}
			if r.Kind != KindSuccess {
				if uint(len(outputs)) < n {
					return Failure[T, []R](s, messages)
				}
				return Success[T, []R](remaining, outputs, messages)
			}
			outputs = append(outputs, r.Value)
			remaining = r.Stream
		}
	}
}

// Count runs p exactly count times; if it cannot succeed that many times
// the whole combinator fails. Grounded directly on the teacher's Count
// (multi.go), generalized over Stream[T] instead of a rune slice.
func Count[T, R any](p Parser[T, R], count uint) Parser[T, []R] {
	return func(s Stream[T]) Reply[T, []R] {
		outputs := make([]R, 0, count)
		var messages []ErrorMessage
		remaining := s
		for i := uint(0); i < count; i++ {
			r := p(remaining)
			messages = append(messages, r.Messages...)
			if r.Kind == KindError {
				return Error[T, []R](r.Stream, r.Fatal, messages)
			}
			if r.Kind == KindFailure {
				return Failure[T, []R](s, messages)
			}
			outputs = append(outputs, r.Value)
			remaining = r.Stream
		}
		return Success[T, []R](remaining, outputs, messages)
	}
}

// Greed applies a sequence of parsers in order; on the first Failure it
// stops and returns Success of the prefix parsed so far (the same
// "greedily consume then stop, don't fail" posture as Many), and on Error
// it aborts with that Error.
func Greed[T, R any](parsers ...Parser[T, R]) Parser[T, []R] {
	return func(s Stream[T]) Reply[T, []R] {
		var (
			outputs  []R
			messages []ErrorMessage
		)
		remaining := s
		for _, p := range parsers {
			r := p(remaining)
			messages = append(messages, r.Messages...)
			if r.Kind == KindError {
				return Error[T, []R](r.Stream, r.Fatal, messages)
			}
			if r.Kind == KindFailure {
				break
			}
			outputs = append(outputs, r.Value)
			remaining = r.Stream
		}
		return Success[T, []R](remaining, outputs, messages)
	}
}

// Tail is the lazily-produced remainder of a Replicate/Partition sequence:
// calling it parses and returns the next element, or (zero, nil, false) once
// the underlying parser stops succeeding.
type Tail[T, R any] func() (R, Tail[T, R], bool)

// Replicate returns a lazy infinite repetition of p: calling the returned
// Tail parses one more R each time, matching spec.md §4.6's description of
// `replicate` as "lazy infinite repetition ... used together with
// partition(n)". It never itself produces a Reply; Partition is what
// actually runs a Stream through it.
func Replicate[T, R any](p Parser[T, R]) func(Stream[T]) Tail[T, R] {
	var next func(Stream[T]) Tail[T, R]
	next = func(s Stream[T]) Tail[T, R] {
		return func() (R, Tail[T, R], bool) {
			r := p(s)
			if r.Kind != KindSuccess {
				var zero R
				return zero, nil, false
			}
			return r.Value, next(r.Stream), true
		}
	}
	return next
}

// Partition splits a Replicate(p) stream into a fixed-length prefix of n
// elements and the lazy tail beyond it. ok reports whether all n prefix
// elements were parsed; when fewer than n are available, prefix holds the
// elements parsed so far, tail is nil and ok is false. A Failure and an
// Error of the underlying parser are not told apart, and Partition does not
// look ahead to check whether the tail holds a further element.
func Partition[T, R any](replicate func(Stream[T]) Tail[T, R], n uint, s Stream[T]) (prefix []R, tail Tail[T, R], ok bool) {
	tail = replicate(s)
	prefix = make([]R, 0, n)
	for i := uint(0); i < n; i++ {
		v, next, more := tail()
		if !more {
			return prefix, nil, false
		}
		prefix = append(prefix, v)
		tail = next
	}
	return prefix, tail, true
}
