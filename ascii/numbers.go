package ascii

import (
	"strconv"

	"github.com/oleiade/comb"
)

// Float parses a sequence of numerical characters into a float64. The '.'
// character is the optional decimal delimiter; a number with no decimal
// part still parses as a float64. It is not Float's role to ensure the
// parsed value fits the grammar's expectations beyond being a valid
// float64 — that is left to the caller, exactly as the teacher's own
// doc comment put it.
//
// Grounded on the teacher's Float() (combinators.go) and its dead,
// commented-out generic reattempt (numbers.go); rebuilt here as a real,
// working parser over comb's core using Try for the one place a host
// strconv.ParseFloat error needs to become an Error reply.
func Float() comb.Parser[rune, float64] {
	digits := Digit1()
	minus := comb.Maybe(comb.Token[rune]('-'))
	dot := comb.Token[rune]('.')

	grammar := comb.Pipe3(
		minus,
		digits,
		comb.Maybe(comb.Right(dot, digits)),
		func(neg comb.Option[rune], intPart string, fracPart comb.Option[string]) string {
			text := intPart
			if frac, ok := fracPart.Get(); ok {
				text = text + "." + frac
			}
			if _, ok := neg.Get(); ok {
				text = "-" + text
			}
			return text
		},
	)

	return comb.Try(grammar, func(text string) (float64, error) {
		return strconv.ParseFloat(text, 64)
	})
}
