package float

import (
	"math"
	"strconv"
	"strings"

	"github.com/calebcase/endf/field"
)

// Encoder is an encoder.
type Encoder struct {
	schema Schema
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema) *Encoder {
	return &Encoder{
		schema: schema,
	}
}

// Encode formats v right justified in a field of schema width.
//
// The shortest digit string that reads back as v is laid out as fixed point
// if that fits, then as d.ddd with an exponent-less exponent (1.2345+12),
// then with the decimal separator anywhere else, then with no separator at
// all. Precision is only given up when none of those fit.
func (e *Encoder) Encode(v float64) (data []byte, err error) {
	defer Error.WrapP(&err)

	err = e.schema.Validate()
	if err != nil {
		return nil, err
	}

	var text string
	switch {
	case math.IsNaN(v):
		text = "nan"
	case math.IsInf(v, 1):
		text = "inf"
	case math.IsInf(v, -1):
		text = "-inf"
	default:
		text = e.format(v)
	}

	if len(text) > e.schema.Width {
		return nil, field.Fail(field.Overflow, []byte(text), -1)
	}

	return []byte(strings.Repeat(" ", e.schema.Width-len(text)) + text), nil
}

// Encode formats v as a real field of the given width and implied fraction
// digits.
func Encode(v float64, width, digits int) ([]byte, error) {
	return NewEncoder(Schema{Width: width, Digits: digits}).Encode(v)
}

// format returns the first layout that fits, or the shortest layout of a
// single digit when nothing fits.
func (e *Encoder) format(v float64) string {
	negative := math.Signbit(v)
	v = math.Abs(v)

	prec := -1
	for {
		digits, exp := decompose(v, prec)

		layouts := e.layouts(negative, digits, exp)
		for _, l := range layouts {
			if len(l) <= e.schema.Width {
				return l
			}
		}

		if len(digits) <= 1 {
			shortest := layouts[0]
			for _, l := range layouts {
				if len(l) < len(shortest) {
					shortest = l
				}
			}

			return shortest
		}

		prec = len(digits) - 2
	}
}

// decompose returns the significant digits of v and the decimal exponent of
// the first one, so v = d.ddd * 10^exp. A negative prec asks for the
// shortest digits that read back as v.
func decompose(v float64, prec int) (digits string, exp int) {
	s := strconv.FormatFloat(v, 'e', prec, 64)

	mark := strings.IndexByte(s, 'e')
	exp, _ = strconv.Atoi(s[mark+1:])

	digits = strings.Replace(s[:mark], ".", "", 1)
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		digits = "0"
	}

	return digits, exp
}

// layouts lists the ways to write digits * 10^(exp-len(digits)+1), in order
// of preference.
func (e *Encoder) layouts(negative bool, digits string, exp int) (ls []string) {
	n := len(digits)

	sign := ""
	if negative {
		sign = "-"
	}

	switch {
	case exp >= n-1:
		fixed := digits + strings.Repeat("0", exp-n+1)
		if e.schema.Digits > 0 {
			fixed += "."
		}
		ls = append(ls, sign+fixed)
	case exp < 0:
		ls = append(ls, sign+"."+strings.Repeat("0", -exp-1)+digits)
	default:
		ls = append(ls, sign+digits[:exp+1]+"."+digits[exp+1:])
	}

	ls = append(ls, sign+digits[:1]+"."+digits[1:]+exponent(exp))

	for p := 0; p <= n; p++ {
		if p != 1 {
			ls = append(ls, sign+digits[:p]+"."+digits[p:]+exponent(exp-p+1))
		}
	}

	// Without a point the decoder takes the last Digits digits as the
	// fraction, so the written exponent carries them back.
	shift := exp - n + 1 + e.schema.Digits
	if shift >= 0 {
		ls = append(ls, sign+digits+strings.Repeat("0", shift))
	}
	ls = append(ls, sign+digits+exponent(shift))

	return ls
}

// exponent writes an exponent-less exponent: the sign is the marker.
func exponent(exp int) string {
	switch {
	case exp == 0:
		return ""
	case exp > 0:
		return "+" + strconv.Itoa(exp)
	}

	return strconv.Itoa(exp)
}
