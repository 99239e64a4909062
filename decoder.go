// Package endf decodes the fixed width numeric fields of ENDF-6 formatted
// records: integers written for the I11 edit descriptor and reals written for
// F11.0.
//
// Every function is pure and safe for concurrent use.
package endf

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/endf/field"
	"github.com/calebcase/endf/float"
	"github.com/calebcase/endf/integer"
)

// Error is the error class for descriptor driven decoding.
var Error = errs.Class("endf")

// Outcome is the result of decoding one field with a descriptor. Kind says
// which of Int or Float holds the value; Err is set when the field failed.
type Outcome struct {
	Kind  field.Kind
	Int   int64
	Float float64
	Err   error
}

// OK reports whether the field decoded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Reason returns the failure reason, or field.Unknown.
func (o Outcome) Reason() field.Reason {
	return field.ReasonOf(o.Err)
}

// Decode decodes raw with the descriptor's grammar.
func Decode(desc field.Descriptor, raw []byte) Outcome {
	o := Outcome{Kind: desc.Kind}

	switch desc.Kind {
	case field.Integer:
		o.Int, o.Err = integer.Decode(raw, desc.Width)
	case field.Real:
		o.Float, o.Err = float.Decode(raw, desc.Width, desc.Digits)
	default:
		o.Err = Error.Wrap(desc.Validate())
	}

	return o
}

// Encode formats an outcome's value back into a field for the descriptor.
func Encode(desc field.Descriptor, o Outcome) (data []byte, err error) {
	defer Error.WrapP(&err)

	if o.Kind != desc.Kind {
		return nil, Error.New("kind mismatch: outcome=%s descriptor=%s", o.Kind, desc.Kind)
	}

	switch desc.Kind {
	case field.Integer:
		return integer.Encode(o.Int, desc.Width)
	case field.Real:
		return float.Encode(o.Float, desc.Width, desc.Digits)
	}

	return nil, desc.Validate()
}

// DecodeInteger decodes an integer field of the given width.
func DecodeInteger(text string, width int) (int64, error) {
	return integer.Decode([]byte(text), width)
}

// DecodeReal decodes a real field of the given width with digits implied
// fraction digits.
func DecodeReal(text string, width, digits int) (float64, error) {
	return float.Decode([]byte(text), width, digits)
}

// EncodeInteger formats v as an integer field of the given width.
func EncodeInteger(v int64, width int) (string, error) {
	data, err := integer.Encode(v, width)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// EncodeReal formats v as a real field of the given width.
func EncodeReal(v float64, width, digits int) (string, error) {
	data, err := float.Encode(v, width, digits)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
