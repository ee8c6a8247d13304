package comb

// Bind is the monadic composition operator (spec.md §4.3): run p, and if it
// succeeds, run k(value) on the advanced stream. Messages from both steps
// are concatenated in order.
//
// The commit rule: when p fails, the returned Failure's stream is reset to
// the ORIGINAL stream handed to Bind, not p's (unchanged, by construction,
// since Satisfy-family primitives never advance on Failure) stream. This
// matters once Bind is nested: an inner Bind's Failure must still look, from
// the outside, like nothing was consumed, so that an enclosing Choice can
// safely retry its next alternative from the same starting point. See
// TestBindFailureRestoresStream.
func Bind[T, A, B any](p Parser[T, A], k func(A) Parser[T, B]) Parser[T, B] {
	return func(s Stream[T]) Reply[T, B] {
		r1 := p(s)
		switch r1.Kind {
		case KindSuccess:
			r2 := k(r1.Value)(r1.Stream)
			r2.Messages = append(append([]ErrorMessage{}, r1.Messages...), r2.Messages...)
			return r2
		case KindFailure:
			return Failure[T, B](s, r1.Messages)
		default: // KindError
			return Error[T, B](s, r1.Fatal, r1.Messages)
		}
	}
}

// Map runs p and, on success, passes its value through f. Structurally this
// is Bind(p, func(a A) Parser[T, B] { return Succeed[T, B](f(a)) }) without
// the extra indirection.
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return func(s Stream[T]) Reply[T, B] {
		r := p(s)
		switch r.Kind {
		case KindSuccess:
			return Success[T, B](r.Stream, f(r.Value), r.Messages)
		case KindFailure:
			return Failure[T, B](s, r.Messages)
		default:
			return Error[T, B](s, r.Fatal, r.Messages)
		}
	}
}

// Try is the one sanctioned place a host-language error crosses into the
// Reply algebra (spec.md §7 item 3 draws the line at combinators catching
// exceptions; a projector returning a Go error rather than panicking is not
// an exception, so Try is free to turn it into an Error reply). It runs p,
// and on success passes the value through f; if f returns a non-nil error,
// Try reports an Error reply carrying that error's message, matching the
// teacher's Float() parser reporting a strconv.ParseFloat failure as a
// NewFatalError rather than letting it panic.
func Try[T, A, B any](p Parser[T, A], f func(A) (B, error)) Parser[T, B] {
	return func(s Stream[T]) Reply[T, B] {
		r := p(s)
		switch r.Kind {
		case KindSuccess:
			out, err := f(r.Value)
			if err != nil {
				pos := s.Position()
				return Error[T, B](s, NewMessage(SeverityError, err.Error(), pos), r.Messages)
			}
			return Success[T, B](r.Stream, out, r.Messages)
		case KindFailure:
			return Failure[T, B](s, r.Messages)
		default:
			return Error[T, B](s, r.Fatal, r.Messages)
		}
	}
}
