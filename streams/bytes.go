package streams

import "github.com/oleiade/comb"

// ByteStream is an immutable comb.Stream[byte] over a fixed []byte. It
// tracks only an absolute index: byte streams typically carry binary
// protocol framing (length-prefixed fields, RESP-style markers) where
// line/column have no meaning.
//
// Grounded on the teacher's bytes.go (Tag over []rune, generalized here to
// raw bytes for binary-ish grammars such as examples/hexcolor's underlying
// two-hex-digit-per-byte decoding).
type ByteStream struct {
	bytes []byte
	index int
}

// NewByteStream builds a ByteStream positioned at the start of b.
func NewByteStream(b []byte) ByteStream {
	return ByteStream{bytes: b, index: 0}
}

// Position implements comb.Stream.
func (b ByteStream) Position() comb.Position {
	return comb.Position{Index: b.index}
}

// CanNext implements comb.Stream.
func (b ByteStream) CanNext() bool {
	return b.index < len(b.bytes)
}

// Current implements comb.Stream.
func (b ByteStream) Current() (byte, bool) {
	if !b.CanNext() {
		return 0, false
	}
	return b.bytes[b.index], true
}

// Next implements comb.Stream.
func (b ByteStream) Next() comb.Stream[byte] {
	if !b.CanNext() {
		return b
	}
	return ByteStream{bytes: b.bytes, index: b.index + 1}
}

// Remainder returns the unconsumed suffix, a test/diagnostic convenience.
func (b ByteStream) Remainder() []byte {
	return b.bytes[b.index:]
}
