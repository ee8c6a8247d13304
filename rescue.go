package comb

// Annotate runs p and appends msgs to the result's messages regardless of
// Kind (spec.md §4.10: message(p, msgs)). Named Annotate here rather than
// spec's `message` to avoid colliding with the Message severity-tagged
// primitive in parser.go.
//
// Grounded on the teacher's Expect(p, expected...) (combinators.go), which
// only rewrites messages on a non-fatal failure; Annotate generalizes that
// to every Kind per spec.md §4.10.
func Annotate[T, R any](p Parser[T, R], msgs ...ErrorMessage) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		return p(s).withMessages(msgs...)
	}
}

// Rescue converts an Error into a Failure, preserving messages. Success and
// Failure pass through unchanged. The returned Failure's stream is the
// INPUT stream (the position of the original attempt), restoring
// alternation exactly as spec.md §4.10 and §8 invariant 10 require.
func Rescue[T, R any](p Parser[T, R]) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		r := p(s)
		if r.Kind != KindError {
			return r
		}
		messages := append(append([]ErrorMessage{}, r.Messages...), r.Fatal)
		return Failure[T, R](s, messages)
	}
}

// RescueSeverity is Rescue, but only demotes Errors whose Fatal.Severity is
// a member of severities; other Errors pass through unchanged. severities
// is a bitmask, tested with Has, preserving spec.md §9's "open question:
// severity flag combination" resolution.
func RescueSeverity[T, R any](p Parser[T, R], severities Severity) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		r := p(s)
		if r.Kind != KindError || !r.Fatal.Severity.Has(severities) {
			return r
		}
		messages := append(append([]ErrorMessage{}, r.Messages...), r.Fatal)
		return Failure[T, R](s, messages)
	}
}

// diagnosticWhen composes p with a constant-diagnostic parser that fires
// only when p's outcome matches want, per spec.md §4.10's errorWhen*/
// warnWhen*/messageWhen* family.
func diagnosticWhen[T, R any](p Parser[T, R], want Kind, severity Severity, text string) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		r := p(s)
		if r.Kind != want {
			return r
		}
		pos := s.Position()
		diag := NewMessage(severity, text, pos)
		if severity == SeverityError {
			return Error[T, R](s, diag, r.Messages)
		}
		return r.withMessages(diag)
	}
}

// ErrorWhenSuccess raises an error-severity diagnostic (as an Error reply)
// when p succeeds; otherwise passes p's reply through.
func ErrorWhenSuccess[T, R any](p Parser[T, R], text string) Parser[T, R] {
	return diagnosticWhen(p, KindSuccess, SeverityError, text)
}

// ErrorWhenFailure raises an error-severity diagnostic when p fails.
func ErrorWhenFailure[T, R any](p Parser[T, R], text string) Parser[T, R] {
	return diagnosticWhen(p, KindFailure, SeverityError, text)
}

// ErrorWhenError annotates (rather than replaces) an existing Error with an
// additional error-severity message.
func ErrorWhenError[T, R any](p Parser[T, R], text string) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		r := p(s)
		if r.Kind != KindError {
			return r
		}
		pos := s.Position()
		return r.withMessages(NewMessage(SeverityError, text, pos))
	}
}

// WarnWhenSuccess annotates p's reply with a warn-severity message when it
// succeeds.
func WarnWhenSuccess[T, R any](p Parser[T, R], text string) Parser[T, R] {
	return diagnosticWhen(p, KindSuccess, SeverityWarn, text)
}

// WarnWhenFailure annotates p's reply with a warn-severity message when it
// fails.
func WarnWhenFailure[T, R any](p Parser[T, R], text string) Parser[T, R] {
	return diagnosticWhen(p, KindFailure, SeverityWarn, text)
}

// MessageWhenSuccess annotates p's reply with a message-severity note when
// it succeeds.
func MessageWhenSuccess[T, R any](p Parser[T, R], text string) Parser[T, R] {
	return diagnosticWhen(p, KindSuccess, SeverityMessage, text)
}

// MessageWhenFailure annotates p's reply with a message-severity note when
// it fails.
func MessageWhenFailure[T, R any](p Parser[T, R], text string) Parser[T, R] {
	return diagnosticWhen(p, KindFailure, SeverityMessage, text)
}
