package field

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for descriptor and schema misuse.
var Error = errs.Class("field")

// Reason tags why a field failed to decode.
type Reason uint8

// Failure reasons.
const (
	Unknown Reason = iota

	// MalformedDigits is a non-digit where a digit was required.
	MalformedDigits
	// InvalidSign is a sign in an illegal position or a sign with no digits
	// following it.
	InvalidSign
	// DoubleSign is a second sign where at most one is permitted.
	DoubleSign
	// UnrecognizedCharacter is a byte outside the numeric alphabet.
	UnrecognizedCharacter
	// IncompleteExponent is an exponent marker or exponent sign with no
	// exponent digits.
	IncompleteExponent
	// DanglingSeparator is a decimal separator with no mantissa digit.
	DanglingSeparator
	// ExtraSeparator is a second decimal separator.
	ExtraSeparator
	// Overflow is a value outside the range of the target type.
	Overflow
	// WrongWidth is a field whose length differs from the descriptor width.
	WrongWidth
)

var reasonNames = [...]string{
	Unknown:               "unknown",
	MalformedDigits:       "malformed digits",
	InvalidSign:           "invalid sign",
	DoubleSign:            "double sign",
	UnrecognizedCharacter: "unrecognized character",
	IncompleteExponent:    "incomplete exponent",
	DanglingSeparator:     "dangling separator",
	ExtraSeparator:        "extra separator",
	Overflow:              "overflow",
	WrongWidth:            "wrong width",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}

	return fmt.Sprintf("reason(%d)", uint8(r))
}

// DecodeError is the failure of a single field decode.
//
// Offset is the index into the raw field of the byte that caused the failure,
// or -1 when the failure is not tied to one byte.
type DecodeError struct {
	Reason Reason
	Field  string
	Offset int
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("decode %q: %s", e.Field, e.Reason)
	}

	return fmt.Sprintf("decode %q: %s at offset %d", e.Field, e.Reason, e.Offset)
}

// Fail returns a DecodeError for the raw field.
func Fail(reason Reason, raw []byte, offset int) error {
	return &DecodeError{
		Reason: reason,
		Field:  string(raw),
		Offset: offset,
	}
}

// ReasonOf returns the reason carried by err, or Unknown if err is not a
// field decode failure.
func ReasonOf(err error) Reason {
	if err == nil {
		return Unknown
	}

	var de *DecodeError
	if errors.As(err, &de) {
		return de.Reason
	}

	return Unknown
}
