package field

import (
	"strconv"
	"strings"
)

// Kind selects the grammar of a descriptor.
type Kind uint8

// Descriptor kinds.
const (
	Integer Kind = iota + 1
	Real
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "I"
	case Real:
		return "F"
	}

	return "?"
}

// Descriptor is a numeric edit descriptor: Iw for integers, Fw.d for reals.
//
// Width is the field width w. Digits is d, the number of digits taken as the
// fraction when a real field has no decimal separator; it is always zero for
// integers.
type Descriptor struct {
	Kind   Kind
	Width  int
	Digits int
}

// Common ENDF-6 descriptors.
var (
	I11  = Descriptor{Kind: Integer, Width: 11}
	F110 = Descriptor{Kind: Real, Width: 11}
)

// ParseDescriptor parses the Fortran spelling of a descriptor, e.g. I11 or
// F11.0. The letter is case insensitive.
func ParseDescriptor(s string) (d Descriptor, err error) {
	if len(s) < 2 {
		return d, Error.New("invalid descriptor: %q", s)
	}

	switch s[0] {
	case 'I', 'i':
		d.Kind = Integer

		d.Width, err = atoi(s[1:])
		if err != nil {
			return Descriptor{}, Error.New("invalid descriptor: %q", s)
		}
	case 'F', 'f':
		d.Kind = Real

		dot := strings.IndexByte(s, '.')
		if dot < 0 {
			return Descriptor{}, Error.New("invalid descriptor: %q: missing digits", s)
		}

		d.Width, err = atoi(s[1:dot])
		if err != nil {
			return Descriptor{}, Error.New("invalid descriptor: %q", s)
		}

		d.Digits, err = atoi(s[dot+1:])
		if err != nil {
			return Descriptor{}, Error.New("invalid descriptor: %q", s)
		}
	default:
		return d, Error.New("invalid descriptor: %q: unknown kind", s)
	}

	err = d.Validate()
	if err != nil {
		return Descriptor{}, err
	}

	return d, nil
}

// atoi converts an unsigned run of digits.
func atoi(s string) (int, error) {
	if s == "" {
		return 0, Error.New("missing digits")
	}

	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return 0, Error.New("not a digit: %q", s[i])
		}
	}

	return strconv.Atoi(s)
}

// Validate checks that the descriptor can describe a field.
func (d Descriptor) Validate() error {
	switch {
	case d.Kind != Integer && d.Kind != Real:
		return Error.New("invalid descriptor: unknown kind %d", d.Kind)
	case d.Width <= 0:
		return Error.New("invalid descriptor: width=%d", d.Width)
	case d.Digits < 0:
		return Error.New("invalid descriptor: digits=%d", d.Digits)
	case d.Kind == Integer && d.Digits != 0:
		return Error.New("invalid descriptor: integer with digits=%d", d.Digits)
	case d.Digits > d.Width:
		return Error.New("invalid descriptor: digits=%d > width=%d", d.Digits, d.Width)
	}

	return nil
}

func (d Descriptor) String() string {
	if d.Kind == Real {
		return d.Kind.String() + strconv.Itoa(d.Width) + "." + strconv.Itoa(d.Digits)
	}

	return d.Kind.String() + strconv.Itoa(d.Width)
}

// MarshalText implements encoding.TextMarshaler.
func (d Descriptor) MarshalText() (text []byte, err error) {
	err = d.Validate()
	if err != nil {
		return nil, err
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Descriptor) UnmarshalText(text []byte) (err error) {
	*d, err = ParseDescriptor(string(text))

	return err
}
