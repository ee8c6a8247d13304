package comb

// FollowedBy runs p and discards any consumption: on Success it returns
// Success with the stream reset to the input (value kept); a Failure is
// promoted to Error (spec.md §4.5) since a positive lookahead that doesn't
// match means the grammar took a wrong turn, not that an alternative should
// be tried; an Error passes through unchanged.
func FollowedBy[T, R any](p Parser[T, R], onMismatch string) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		r := p(s)
		switch r.Kind {
		case KindSuccess:
			return Success[T, R](s, r.Value, r.Messages)
		case KindFailure:
			pos := s.Position()
			return Error[T, R](s, NewMessage(SeverityError, onMismatch, pos), r.Messages)
		default:
			return r
		}
	}
}

// violationMarker tags an Error raised by NotFollowedBy itself (the
// forbidden pattern matched), as opposed to an Error raised by p. It's an
// unexported high bit set alongside SeverityError — so the Reply still
// reports as an error to anyone inspecting just the public severities —
// that lets a second, enclosing NotFollowedBy tell "the pattern I'm
// watching matched" apart from "the pattern I'm watching itself blew up",
// the distinction spec.md §8 invariant 9 (double negation) needs and a bare
// KindError can't carry on its own, since KindError is otherwise a sink
// that never turns back into KindSuccess.
const violationMarker Severity = 1 << 7

// NotFollowedBy runs p without consuming input: Success becomes Error (the
// forbidden pattern matched), Failure becomes Success(unit) (the forbidden
// pattern did not match, as desired), and a genuine Error from p stays
// Error. An incoming Error that is itself a NotFollowedBy violation (i.e.
// this is the outer half of a notFollowedBy(notFollowedBy(p)) composition)
// is inverted back to Success, so double negation satisfies spec.md §8
// invariant 9 instead of bottoming out at Error unconditionally.
func NotFollowedBy[T, R any](p Parser[T, R]) Parser[T, struct{}] {
	return func(s Stream[T]) Reply[T, struct{}] {
		r := p(s)
		switch r.Kind {
		case KindSuccess:
			pos := s.Position()
			return Error[T, struct{}](s, NewMessage(SeverityError|violationMarker, "unexpected match", pos), r.Messages)
		case KindFailure:
			return Success[T, struct{}](s, struct{}{}, r.Messages)
		default:
			if r.Fatal.Severity.Has(violationMarker) {
				return Success[T, struct{}](s, struct{}{}, r.Messages)
			}
			return Error[T, struct{}](r.Stream, r.Fatal, r.Messages)
		}
	}
}

// Not is an alias of NotFollowedBy: the boolean-complement framing spec.md
// §4.5 names alongside notFollowedBy.
func Not[T, R any](p Parser[T, R]) Parser[T, struct{}] {
	return NotFollowedBy(p)
}

// Maybe runs p; on Failure it succeeds with (zero value, false) and the
// stream unchanged rather than propagating the failure, so Maybe never
// returns Failure (spec.md §8 invariant 8). Success and Error pass through.
func Maybe[T, R any](p Parser[T, R]) Parser[T, Option[R]] {
	return func(s Stream[T]) Reply[T, Option[R]] {
		r := p(s)
		switch r.Kind {
		case KindSuccess:
			return Success[T, Option[R]](r.Stream, Some(r.Value), r.Messages)
		case KindFailure:
			return Success[T, Option[R]](s, None[R](), r.Messages)
		default:
			return Error[T, Option[R]](r.Stream, r.Fatal, r.Messages)
		}
	}
}

// Option is the explicit sum type spec.md §9 prefers over a null for
// end-of-input/absent-value states: present token or absent, nothing more.
type Option[R any] struct {
	value R
	ok    bool
}

// Some builds a present Option.
func Some[R any](v R) Option[R] { return Option[R]{value: v, ok: true} }

// None builds an absent Option.
func None[R any]() Option[R] { return Option[R]{} }

// Get returns the wrapped value and whether it is present.
func (o Option[R]) Get() (R, bool) { return o.value, o.ok }

// IsSome reports whether the Option holds a value.
func (o Option[R]) IsSome() bool { return o.ok }
