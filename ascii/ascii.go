// Package ascii provides the character-class helpers spec.md §1 calls
// "numeric character-class helpers" and places out of scope for the core
// combinator library proper. They are built entirely on the public
// comb.Satisfy/comb.Token surface over streams.RuneStream, the way a
// grammar author using comb would build them themselves.
//
// Grounded on the teacher's characters.go and bytes.go (Digit, Alpha, Space,
// Tab, LF, CR, CRLF, Newline, Tag), translated onto the new comb.Satisfy
// core instead of bare []rune indexing.
package ascii

import "github.com/oleiade/comb"

// Digit parses a single '0'-'9' character.
func Digit() comb.Parser[rune, rune] {
	return comb.Satisfy(func(r rune) bool { return r >= '0' && r <= '9' })
}

// Alpha parses a single 'a'-'z' or 'A'-'Z' character.
func Alpha() comb.Parser[rune, rune] {
	return comb.Satisfy(func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
}

// AlphaNumeric parses a single alphanumeric character.
func AlphaNumeric() comb.Parser[rune, rune] {
	return comb.Satisfy(func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	})
}

// Space parses a single ' ' character.
func Space() comb.Parser[rune, rune] {
	return comb.Token(' ')
}

// Tab parses a single '\t' character.
func Tab() comb.Parser[rune, rune] {
	return comb.Token('\t')
}

// LF parses a line feed '\n' character.
func LF() comb.Parser[rune, rune] {
	return comb.Token('\n')
}

// CR parses a carriage return '\r' character.
func CR() comb.Parser[rune, rune] {
	return comb.Token('\r')
}

// CRLF parses the two-character sequence "\r\n".
func CRLF() comb.Parser[rune, string] {
	return comb.Map(comb.Both(CR(), LF()), func(p comb.PairContainer[rune, rune]) string {
		return string([]rune{p.Left, p.Right})
	})
}

// Newline parses either LF or CRLF, normalizing both to a string.
func Newline() comb.Parser[rune, string] {
	return comb.Choice(
		comb.Map(LF(), func(r rune) string { return string(r) }),
		CRLF(),
	)
}

// Whitespace parses zero or more space characters, returning them as a
// string (possibly empty).
func Whitespace() comb.Parser[rune, string] {
	return comb.Map(comb.Many(Space(), 0), func(rs []rune) string { return string(rs) })
}

// Digit0 parses zero or more digits into a string.
func Digit0() comb.Parser[rune, string] {
	return comb.Map(comb.Many(Digit(), 0), func(rs []rune) string { return string(rs) })
}

// Digit1 parses one or more digits into a string.
func Digit1() comb.Parser[rune, string] {
	return comb.Map(comb.Many(Digit(), 1), func(rs []rune) string { return string(rs) })
}

// Alpha0 parses zero or more alphabetic characters into a string.
func Alpha0() comb.Parser[rune, string] {
	return comb.Map(comb.Many(Alpha(), 0), func(rs []rune) string { return string(rs) })
}

// Alpha1 parses one or more alphabetic characters into a string.
func Alpha1() comb.Parser[rune, string] {
	return comb.Map(comb.Many(Alpha(), 1), func(rs []rune) string { return string(rs) })
}

// AlphaNumeric1 parses one or more alphanumeric characters into a string.
func AlphaNumeric1() comb.Parser[rune, string] {
	return comb.Map(comb.Many(AlphaNumeric(), 1), func(rs []rune) string { return string(rs) })
}

// Tag parses a provided candidate string exactly.
func Tag(tag string) comb.Parser[rune, string] {
	runes := []rune(tag)
	parsers := make([]comb.Parser[rune, rune], len(runes))
	for i, r := range runes {
		parsers[i] = comb.Token(r)
	}
	return comb.Map(comb.Sequence(parsers...), func(rs []rune) string { return string(rs) })
}

// HexDigit parses a single hexadecimal digit character.
func HexDigit() comb.Parser[rune, rune] {
	return comb.Satisfy(func(r rune) bool {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	})
}
