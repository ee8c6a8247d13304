package comb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonadLeftIdentity(t *testing.T) {
	t.Parallel()

	s := newSliceStream("42x")
	k := func(v rune) Parser[rune, string] { return Succeed[rune, string](string(v) + "!") }

	left := Bind(Succeed[rune, rune]('4'), k)(s)
	right := k('4')(s)

	assert.Equal(t, right.Kind, left.Kind)
	assert.Equal(t, right.Value, left.Value)
	assert.Equal(t, right.Stream.Position(), left.Stream.Position())
}

func TestMonadRightIdentity(t *testing.T) {
	t.Parallel()

	s := newSliceStream("42x")
	p := digit()

	left := Bind(p, Succeed[rune, rune])(s)
	right := p(s)

	assert.Equal(t, right.Kind, left.Kind)
	assert.Equal(t, right.Value, left.Value)
	assert.Equal(t, right.Stream.Position(), left.Stream.Position())
}

func TestMonadAssociativity(t *testing.T) {
	t.Parallel()

	s := newSliceStream("42x")
	p := digit()
	k := func(v rune) Parser[rune, rune] { return Succeed[rune, rune](v) }
	j := func(v rune) Parser[rune, string] { return Succeed[rune, string](string(v)) }

	left := Bind(Bind(p, k), j)(s)
	right := Bind(p, func(x rune) Parser[rune, string] { return Bind(k(x), j) })(s)

	assert.Equal(t, right.Kind, left.Kind)
	assert.Equal(t, right.Value, left.Value)
	assert.Equal(t, right.Stream.Position(), left.Stream.Position())
}

// TestBindFailureRestoresStream pins down the spec's "open question: stream
// on Failure from bind step 3" resolution: a Failure from the first
// sub-parser resets the stream to the ORIGINAL input, even if an earlier
// nested Bind step had advanced partway through.
func TestBindFailureRestoresStream(t *testing.T) {
	t.Parallel()

	s := newSliceStream("4x")

	// The inner Bind consumes the '4' successfully, then fails trying to read
	// a second digit; that Failure is the outer Bind's first sub-parser
	// result.
	inner := Bind(digit(), func(rune) Parser[rune, rune] { return digit() })
	p := Bind(inner, func(rune) Parser[rune, rune] { return digit() })

	r := p(s)

	assert.Equal(t, KindFailure, r.Kind)
	assert.Equal(t, s.Position(), r.Stream.Position())
}

// TestBindFirstParserErrorKeepsStream exercises spec.md §4.3 step 4: the
// FIRST sub-parser itself raises an Error, never reaching k at all. Bind
// resets to the original input stream here too (bind.go's default case),
// though since Err never advances the stream itself this coincides with
// where the Error was raised.
func TestBindFirstParserErrorKeepsStream(t *testing.T) {
	t.Parallel()

	s := newSliceStream("4x")
	p := Bind(Err[rune, rune]("boom"), func(rune) Parser[rune, rune] { return digit() })

	r := p(s)

	assert.Equal(t, KindError, r.Kind)
	assert.Equal(t, s.Position(), r.Stream.Position())
	assert.Equal(t, "boom", r.Fatal.Text)
}

// TestBindSuccessThenErrorAdvancesStream covers the case spec.md §4.3 step 2
// describes: the first sub-parser succeeds, so Bind runs k on the ADVANCED
// stream and inherits whatever k produces verbatim — including its stream
// position, exactly like scenario S5 (rescue_test.go's
// TestErrorWhenFailure): the Error's position is where k raised it, not
// where Bind started.
func TestBindSuccessThenErrorAdvancesStream(t *testing.T) {
	t.Parallel()

	s := newSliceStream("4x")
	p := Bind(digit(), func(rune) Parser[rune, rune] { return Err[rune, rune]("boom") })

	r := p(s)

	assert.Equal(t, KindError, r.Kind)
	assert.Equal(t, 1, r.Stream.Position().Index)
	assert.Equal(t, "boom", r.Fatal.Text)
}

func TestMap(t *testing.T) {
	t.Parallel()

	p := Map(digit(), func(r rune) int { return int(r - '0') })

	r := p(newSliceStream("7x"))
	assert.Equal(t, KindSuccess, r.Kind)
	assert.Equal(t, 7, r.Value)
}

func TestTry(t *testing.T) {
	t.Parallel()

	ok := Try(digit(), func(r rune) (int, error) { return int(r - '0'), nil })(newSliceStream("7"))
	assert.Equal(t, KindSuccess, ok.Kind)
	assert.Equal(t, 7, ok.Value)

	boom := errors.New("conversion failed")
	failing := Try(digit(), func(rune) (int, error) { return 0, boom })(newSliceStream("7"))
	assert.Equal(t, KindError, failing.Kind)
	assert.Equal(t, boom.Error(), failing.Fatal.Text)
}
