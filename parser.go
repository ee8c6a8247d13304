// Package comb implements a monadic parser combinator library: complex
// parsers are built by composing small, pure values (Parser) over an
// immutable, positioned token Stream. See Reply for the three-way
// success/failure/error algebra every combinator in this package respects.
//
// N.B: the shape of this package (a Parser as a plain function value, a
// Result/Reply struct carrying a remaining stream, combinators built purely
// by composition) is inherited from github.com/oleiade/gomme, generalized
// from a rune-slice-only parser to an arbitrary Stream[T].
package comb

// Parser is a pure function from a Stream[T] to a Reply[T, R]. Parsers hold
// no mutable state: the same Parser value can be shared across goroutines
// and reused arbitrarily many times, and applying it twice to the same
// Stream value produces structurally equivalent Replies.
type Parser[T, R any] func(Stream[T]) Reply[T, R]

// Run applies parser to stream. It is nothing more than a direct call,
// provided so call sites read as "run this parser on this stream" rather
// than invoking a bare function value, and as the one place this package's
// doc comment can anchor the "no side effects beyond the Stream's" contract.
func Run[T, R any](parser Parser[T, R], stream Stream[T]) Reply[T, R] {
	return parser(stream)
}

// Succeed builds a parser that consumes nothing and always succeeds with v.
func Succeed[T, R any](v R) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		return Success[T, R](s, v, nil)
	}
}

// Fail builds a parser that always fails without consuming input.
func Fail[T, R any]() Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		return Failure[T, R](s, nil)
	}
}

// Err builds a parser that always raises a fatal error-severity message at
// the current position.
func Err[T, R any](text string) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		pos := s.Position()
		return Error[T, R](s, NewMessage(SeverityError, text, pos), nil)
	}
}

// Warn builds a parser that always raises a fatal warn-severity message at
// the current position.
func Warn[T, R any](text string) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		pos := s.Position()
		return Error[T, R](s, NewMessage(SeverityWarn, text, pos), nil)
	}
}

// Message builds a parser that always raises a fatal message-severity
// diagnostic at the current position.
func Message[T, R any](text string) Parser[T, R] {
	return func(s Stream[T]) Reply[T, R] {
		pos := s.Position()
		return Error[T, R](s, NewMessage(SeverityMessage, text, pos), nil)
	}
}

// EOF succeeds with struct{}{} iff the stream has no more tokens.
func EOF[T any]() Parser[T, struct{}] {
	return func(s Stream[T]) Reply[T, struct{}] {
		if s.CanNext() {
			return Failure[T, struct{}](s, nil)
		}
		return Success[T, struct{}](s, struct{}{}, nil)
	}
}

// Any succeeds with the current token and advances by one, or fails at
// end-of-input.
func Any[T any]() Parser[T, T] {
	return func(s Stream[T]) Reply[T, T] {
		tok, ok := s.Current()
		if !ok {
			return Failure[T, T](s, nil)
		}
		return Success[T, T](s.Next(), tok, nil)
	}
}

// Satisfy succeeds with the current token, advancing by one, iff the stream
// has a token and pred holds for it. It never returns Error: a predicate
// mismatch is always a soft Failure, leaving the stream untouched so
// alternation can try another branch.
func Satisfy[T any](pred func(T) bool) Parser[T, T] {
	return func(s Stream[T]) Reply[T, T] {
		tok, ok := s.Current()
		if !ok || !pred(tok) {
			return Failure[T, T](s, nil)
		}
		return Success[T, T](s.Next(), tok, nil)
	}
}

// Token builds a parser that succeeds iff the current token equals t.
func Token[T comparable](t T) Parser[T, T] {
	return Satisfy(func(tok T) bool { return tok == t })
}
