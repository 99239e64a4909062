// Package field splits a fixed width numeric field into the pieces the
// integer and real grammars work on: a normalized token with blanks removed,
// its category, the special value table and the failure taxonomy.
package field

// Blank is the only byte elided from a field.
const Blank = ' '

// Token is a raw field with every blank removed, wherever it occurred.
//
// Bytes keeps the remaining bytes in order. An all blank field normalizes to
// a token with no bytes, which IsBlank reports; it is a legal field and
// decodes to zero.
type Token struct {
	Raw   []byte
	Bytes []byte

	offsets []int
}

// Normalize removes every blank from raw. The returned token does not alias
// raw's backing array.
func Normalize(raw []byte) Token {
	t := Token{
		Raw:     raw,
		Bytes:   make([]byte, 0, len(raw)),
		offsets: make([]int, 0, len(raw)),
	}

	for i, b := range raw {
		if b == Blank {
			continue
		}

		t.Bytes = append(t.Bytes, b)
		t.offsets = append(t.offsets, i)
	}

	return t
}

// IsBlank reports whether the raw field held only blanks.
func (t Token) IsBlank() bool {
	return len(t.Bytes) == 0
}

// Offset maps an index into Bytes back to an index into Raw. Indexes past the
// end map to -1.
func (t Token) Offset(i int) int {
	if i < 0 || i >= len(t.offsets) {
		return -1
	}

	return t.offsets[i]
}

// Fail returns a DecodeError for the byte at index i of Bytes. An i past the
// end of the token reports no offset.
func (t Token) Fail(reason Reason, i int) error {
	return Fail(reason, t.Raw, t.Offset(i))
}

// Check fails with WrongWidth unless raw is exactly width bytes long.
func Check(raw []byte, width int) error {
	if len(raw) != width {
		return Fail(WrongWidth, raw, -1)
	}

	return nil
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// IsSign reports whether b is '+' or '-'.
func IsSign(b byte) bool {
	return b == '+' || b == '-'
}

// IsExponentMarker reports whether b is one of E, e, D or d.
func IsExponentMarker(b byte) bool {
	switch b {
	case 'E', 'e', 'D', 'd':
		return true
	}

	return false
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
