package comb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func comma() Parser[rune, rune] { return Token(',') }

func TestSepBy(t *testing.T) {
	t.Parallel()

	// S4: sepBy(digit, 1, token(',')) on "1,2,3" succeeds with ['1','2','3'].
	s := newSliceStream("1,2,3")
	r := SepBy(digit(), 1, comma())(s)

	assert.Equal(t, KindSuccess, r.Kind)
	assert.Equal(t, []rune{'1', '2', '3'}, r.Value)
	assert.False(t, r.Stream.CanNext())
}

// TestSepByZero pins down spec.md §8 invariant 12: sepBy(p, 0, sep) on an
// input where p immediately fails returns Success([], original stream).
func TestSepByZero(t *testing.T) {
	t.Parallel()

	s := newSliceStream("x")
	r := SepBy(digit(), 0, comma())(s)

	assert.Equal(t, KindSuccess, r.Kind)
	assert.Empty(t, r.Value)
	assert.Equal(t, s.Position(), r.Stream.Position())
}

func TestSepByMinimumNotMet(t *testing.T) {
	t.Parallel()

	r := SepBy(digit(), 2, comma())(newSliceStream("1x"))
	assert.Equal(t, KindFailure, r.Kind)
}

func TestEndBy(t *testing.T) {
	t.Parallel()

	r := EndBy(digit(), 1, comma())(newSliceStream("1,2,x"))
	assert.Equal(t, KindSuccess, r.Kind)
	assert.Equal(t, []rune{'1', '2'}, r.Value)
}

func TestSepEndBy(t *testing.T) {
	t.Parallel()

	withTrailing := SepEndBy(digit(), 1, comma())(newSliceStream("1,2,"))
	assert.Equal(t, KindSuccess, withTrailing.Kind)
	assert.Equal(t, []rune{'1', '2'}, withTrailing.Value)
	assert.False(t, withTrailing.Stream.CanNext())

	withoutTrailing := SepEndBy(digit(), 1, comma())(newSliceStream("1,2"))
	assert.Equal(t, KindSuccess, withoutTrailing.Kind)
	assert.Equal(t, []rune{'1', '2'}, withoutTrailing.Value)
}
