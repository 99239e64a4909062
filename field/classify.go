package field

// Category is the kind of token a field normalized to.
type Category uint8

// Token categories.
const (
	Malformed Category = iota
	Empty
	SpecialValue
	Numeric
)

func (c Category) String() string {
	switch c {
	case Empty:
		return "blank"
	case SpecialValue:
		return "special"
	case Numeric:
		return "numeric"
	}

	return "malformed"
}

// Classify decides which grammar applies to t.
//
// A Numeric token only holds bytes of the numeric alphabet (digits, '.',
// signs and the exponent markers E, e, D, d); its structure is still up to
// the grammar. A Malformed token comes with the failure for its first byte
// outside that alphabet: MalformedDigits for a letter, UnrecognizedCharacter
// for anything else.
func Classify(t Token) (Category, error) {
	if t.IsBlank() {
		return Empty, nil
	}

	if _, ok := Special(t.Bytes); ok {
		return SpecialValue, nil
	}

	for i, b := range t.Bytes {
		switch {
		case IsDigit(b), IsSign(b), IsExponentMarker(b), b == '.':
		case isLetter(b):
			return Malformed, t.Fail(MalformedDigits, i)
		default:
			return Malformed, t.Fail(UnrecognizedCharacter, i)
		}
	}

	return Numeric, nil
}
