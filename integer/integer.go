package integer

import (
	"strconv"

	"github.com/zeebo/errs"

	"github.com/calebcase/endf/field"
)

// Error is the error class for integer fields.
var Error = errs.Class("integer")

// Schema for an integer field (the Iw edit descriptor).
type Schema struct {
	Width int
}

// Validate checks the schema describes a field.
func (s Schema) Validate() error {
	return field.Descriptor{Kind: field.Integer, Width: s.Width}.Validate()
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
//
// Every blank is ignored. An all blank field is zero. What remains must be an
// optional sign followed by one or more digits.
func (d *Decoder) Decode(raw []byte) (v int64, err error) {
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
		return 0, t.Fail(field.MalformedDigits, 0)
	}

	err = validate(t)
	if err != nil {
		return 0, err
	}

	v, err = strconv.ParseInt(string(t.Bytes), 10, 64)
	if err != nil {
		return 0, field.Fail(field.Overflow, raw, -1)
	}

	return v, nil
}

// validate checks t is [sign]digit+.
func validate(t field.Token) error {
	b := t.Bytes

	signed := field.IsSign(b[0])

	i := 0
	if signed {
		i++
	}

	if i == len(b) {
		return t.Fail(field.InvalidSign, 0)
	}

	for ; i < len(b); i++ {
		switch {
		case field.IsDigit(b[i]):
		case field.IsSign(b[i]) && signed && i == 1:
			return t.Fail(field.DoubleSign, i)
		case field.IsSign(b[i]):
			return t.Fail(field.InvalidSign, i)
		default:
			return t.Fail(field.MalformedDigits, i)
		}
	}

	return nil
}

// Decode parses an integer field of the given width.
func Decode(raw []byte, width int) (int64, error) {
	return NewDecoder(Schema{Width: width}).Decode(raw)
}

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
func (e *Encoder) Encode(v int64) (data []byte, err error) {
	defer Error.WrapP(&err)

	err = e.schema.Validate()
	if err != nil {
		return nil, err
	}

	digits := strconv.AppendInt(nil, v, 10)
	if len(digits) > e.schema.Width {
		return nil, field.Fail(field.Overflow, digits, -1)
	}

	data = make([]byte, e.schema.Width)
	pad := e.schema.Width - len(digits)
	for i := 0; i < pad; i++ {
		data[i] = field.Blank
	}
	copy(data[pad:], digits)

	return data, nil
}

// Encode formats v as an integer field of the given width.
func Encode(v int64, width int) ([]byte, error) {
	return NewEncoder(Schema{Width: width}).Encode(v)
}
