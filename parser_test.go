package comb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sliceStream is a minimal comb.Stream[rune] used only by this package's
// own tests, kept deliberately separate from the streams subpackage so the
// core's tests don't import downstream packages.
type sliceStream struct {
	runes []rune
	index int
}

func newSliceStream(s string) sliceStream {
	return sliceStream{runes: []rune(s)}
}

func (s sliceStream) Position() Position { return Position{Index: s.index} }
func (s sliceStream) CanNext() bool      { return s.index < len(s.runes) }
func (s sliceStream) Current() (rune, bool) {
	if !s.CanNext() {
		return 0, false
	}
	return s.runes[s.index], true
}
func (s sliceStream) Next() Stream[rune] {
	if !s.CanNext() {
		return s
	}
	return sliceStream{runes: s.runes, index: s.index + 1}
}

func digit() Parser[rune, rune] {
	return Satisfy(func(r rune) bool { return r >= '0' && r <= '9' })
}

func TestSatisfyNonConsumptionOnMiss(t *testing.T) {
	t.Parallel()

	s := newSliceStream("x")
	r := digit()(s)

	assert.Equal(t, KindFailure, r.Kind)
	assert.Equal(t, s.Position(), r.Stream.Position())
}

func TestSatisfyAdvanceOnHit(t *testing.T) {
	t.Parallel()

	s := newSliceStream("4x")
	r := digit()(s)

	assert.Equal(t, KindSuccess, r.Kind)
	assert.Equal(t, '4', r.Value)
	assert.Equal(t, 1, r.Stream.Position().Index)
}

func TestEOF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindSuccess, EOF[rune]()(newSliceStream("")).Kind)
	assert.Equal(t, KindFailure, EOF[rune]()(newSliceStream("x")).Kind)
}

func TestAny(t *testing.T) {
	t.Parallel()

	r := Any[rune]()(newSliceStream("ab"))
	assert.Equal(t, KindSuccess, r.Kind)
	assert.Equal(t, 'a', r.Value)
	assert.Equal(t, 1, r.Stream.Position().Index)

	assert.Equal(t, KindFailure, Any[rune]()(newSliceStream("")).Kind)
}

func TestToken(t *testing.T) {
	t.Parallel()

	p := Token('x')
	assert.Equal(t, KindSuccess, p(newSliceStream("x")).Kind)
	assert.Equal(t, KindFailure, p(newSliceStream("y")).Kind)
}

func TestPurity(t *testing.T) {
	t.Parallel()

	s := newSliceStream("42x")
	p := Many(digit(), 1)

	r1 := p(s)
	r2 := p(s)

	assert.Equal(t, r1.Kind, r2.Kind)
	assert.Equal(t, r1.Value, r2.Value)
	assert.Equal(t, r1.Stream.Position(), r2.Stream.Position())
}

func TestErrPropagatesStream(t *testing.T) {
	t.Parallel()

	s := newSliceStream("abc")
	r := Err[rune, rune]("boom")(s)

	assert.Equal(t, KindError, r.Kind)
	assert.Equal(t, "boom", r.Fatal.Text)
	assert.Equal(t, SeverityError, r.Fatal.Severity)
	assert.Equal(t, s.Position(), r.Fatal.Begin)
}
