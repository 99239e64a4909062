package float

import (
	"errors"
	"math"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/calebcase/endf/field"
)

// Error is the error class for real fields.
var Error = errs.Class("float")

// Schema for a real field (the Fw.d edit descriptor).
type Schema struct {
	Width  int
	Digits int
}

// Validate checks the schema describes a field.
func (s Schema) Validate() error {
	return field.Descriptor{Kind: field.Real, Width: s.Width, Digits: s.Digits}.Validate()
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema) *Decoder {
	return &Decoder{
		schema: schema,
	}
}

// Decode parses a field of exactly schema width bytes.
func (d *Decoder) Decode(raw []byte) (v float64, err error) {
	defer Error.WrapP(&err)

	err = d.schema.Validate()
	if err != nil {
		return 0, err
	}

	err = field.Check(raw, d.schema.Width)
	if err != nil {
		return 0, err
	}

	t := field.Normalize(raw)

	category, err := field.Classify(t)
	if err != nil {
		return 0, err
	}

	switch category {
	case field.Empty:
		return 0, nil
	case field.SpecialValue:
		v, _ = field.Special(t.Bytes)

		return v, nil
	}

	n, err := scan(t)
	if err != nil {
		return 0, err
	}

	if !n.point {
		n.scale -= d.schema.Digits
	}

	return n.value()
}

// Decode parses a real field of the given width and implied fraction digits.
func Decode(raw []byte, width, digits int) (float64, error) {
	return NewDecoder(Schema{Width: width, Digits: digits}).Decode(raw)
}

// maxExponent bounds the decimal exponent of a value. Anything larger
// already saturates a float64 to Inf or zero.
const maxExponent = 100000

// number is a scanned token: digits * 10^scale with a sign.
type number struct {
	negative bool
	digits   []byte
	point    bool
	scale    int
}

// scan checks t against [sign] mantissa [exponent] and returns its parts.
func scan(t field.Token) (n number, err error) {
	b := t.Bytes
	i := 0

	if field.IsSign(b[0]) {
		n.negative = b[0] == '-'
		i++
	}

	for ; i < len(b) && field.IsDigit(b[i]); i++ {
		n.digits = append(n.digits, b[i])
	}

	if i < len(b) && b[i] == '.' {
		n.point = true
		i++

		for ; i < len(b) && field.IsDigit(b[i]); i++ {
			n.digits = append(n.digits, b[i])
			n.scale--
		}
	}

	if len(n.digits) == 0 {
		switch {
		case n.point:
			return n, t.Fail(field.DanglingSeparator, i-1)
		case i == len(b):
			return n, t.Fail(field.InvalidSign, 0)
		case field.IsSign(b[i]):
			return n, t.Fail(field.DoubleSign, i)
		default:
			return n, t.Fail(field.MalformedDigits, i)
		}
	}

	exponent := false
	if i < len(b) && field.IsExponentMarker(b[i]) {
		exponent = true
		i++
	}

	negative := false
	if i < len(b) && field.IsSign(b[i]) {
		exponent = true
		negative = b[i] == '-'
		i++
	}

	if exponent {
		start, exp := i, 0

		// The fraction digits and the implied decimal can pull the scale
		// back by at most the raw width.
		limit := maxExponent + len(t.Raw)

		for ; i < len(b) && field.IsDigit(b[i]); i++ {
			exp = exp*10 + int(b[i]-'0')
			if exp > limit {
				exp = limit
			}
		}

		if i == start {
			if i < len(b) && field.IsSign(b[i]) {
				return n, t.Fail(field.DoubleSign, i)
			}

			return n, t.Fail(field.IncompleteExponent, i-1)
		}

		if negative {
			exp = -exp
		}
		n.scale += exp
	}

	if i < len(b) {
		switch {
		case b[i] == '.':
			return n, t.Fail(field.ExtraSeparator, i)
		case field.IsSign(b[i]):
			return n, t.Fail(field.DoubleSign, i)
		default:
			return n, t.Fail(field.MalformedDigits, i)
		}
	}

	return n, nil
}

var pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

// value converts the number to the nearest float64.
//
// Significands of at most 15 digits and powers of ten up to 10^22 are both
// exact in a float64, so a single multiply or divide is correctly rounded.
// Everything else goes through strconv.
func (n number) value() (v float64, err error) {
	digits := n.digits
	for len(digits) > 0 && digits[0] == '0' {
		digits = digits[1:]
	}

	switch {
	case len(digits) == 0:
		v = 0
	case len(digits) <= 15 && -22 <= n.scale && n.scale <= 22:
		w, perr := strconv.ParseUint(string(digits), 10, 64)
		if perr != nil {
			return 0, perr
		}

		v = float64(w)
		if n.scale < 0 {
			v /= pow10[-n.scale]
		} else {
			v *= pow10[n.scale]
		}
	default:
		// Written as d.ddd so the exponent is the value's magnitude, however
		// many digits the field held.
		s := string(digits[:1])
		if len(digits) > 1 {
			s += "." + string(digits[1:])
		}
		s += "e" + strconv.Itoa(n.scale+len(digits)-1)

		v, err = strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, err
		}
	}

	if n.negative {
		v = math.Copysign(v, -1)
	}

	return v, nil
}
