package comb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func plus() Parser[rune, Unit] {
	return Map(Token('+'), func(rune) Unit { return Unit{} })
}

// TestChainl1LeftAssociative is scenario S7: chainl(digit, token('+'),
// (a,b) -> concat(a,b)) on "1+2+3" folds left to "123".
func TestChainl1LeftAssociative(t *testing.T) {
	t.Parallel()

	digitString := Map(digit(), func(r rune) string { return string(r) })
	concat := func(a, b string) string { return a + b }

	p := Chainl1(digitString, plus(), concat)
	r := p(newSliceStream("1+2+3"))

	assert.Equal(t, KindSuccess, r.Kind)
	assert.Equal(t, "123", r.Value)
	assert.False(t, r.Stream.CanNext())
}

func TestChainlWithSeed(t *testing.T) {
	t.Parallel()

	digitInt := Map(digit(), func(r rune) int { return int(r - '0') })
	sum := func(a, b int) int { return a + b }

	p := Chainl(digitInt, plus(), 0, sum)
	r := p(newSliceStream("1+2+3"))

	assert.Equal(t, KindSuccess, r.Kind)
	assert.Equal(t, 6, r.Value)
}

func TestChainrRightAssociative(t *testing.T) {
	t.Parallel()

	digitString := Map(digit(), func(r rune) string { return string(r) })
	// Right fold of subtraction-as-string-append highlights associativity:
	// f(a, b) = a + "(" + b + ")" applied right-to-left vs left-to-right
	// differ, so this pins down that Chainr really folds from the right.
	wrap := func(a, b string) string { return a + "(" + b + ")" }

	p := Chainr1(digitString, plus(), wrap)
	r := p(newSliceStream("1+2+3"))

	assert.Equal(t, KindSuccess, r.Kind)
	assert.Equal(t, "1(2(3))", r.Value)
}

func TestChainSingleElementNoSeparator(t *testing.T) {
	t.Parallel()

	digitInt := Map(digit(), func(r rune) int { return int(r - '0') })
	r := Chainl1(digitInt, plus(), func(a, b int) int { return a + b })(newSliceStream("7x"))

	assert.Equal(t, KindSuccess, r.Kind)
	assert.Equal(t, 7, r.Value)
}
