// Package float decodes real fields written for the Fortran Fw.d edit
// descriptor, as found in ENDF-6 records (F11.0).
//
// The equation for a decoded field is:
//
//  number = sign * digits * 10 ^ (exponent - fraction)
//
// Where digits are all mantissa digits read as one integer, fraction is the
// count of digits after the decimal separator, and exponent is the value of
// the optional exponent. For example:
//
//  1.2345+12 = 12345 * 10^(12 - 4)
//
// Blanks
//
// Every blank is removed before the field is read, not only leading and
// trailing ones. A field of only blanks is zero.
//
//  "1 . 2 E - 3" -> "1.2E-3"
//  "           " -> 0
//
// Grammar
//
// After blanks are removed the field must match:
//
//  field    = sign? mantissa exponent?
//  mantissa = digits | digits '.' | digits '.' digits | '.' digits
//  exponent = marker sign? digits | sign digits
//  marker   = 'E' | 'e' | 'D' | 'd'
//  sign     = '+' | '-'
//
// The second exponent form has no marker: a sign right after the mantissa
// starts the exponent. This is how ENDF-6 squeezes eleven characters of
// precision into a column.
//
//  | Field         | Value          |
//  |---------------|----------------|
//  | " 1.234567+1" | 12.34567       |
//  | " 1.23456-12" | 1.23456E-12    |
//  | " 1.2345+123" | 1.2345E+123    |
//  | " 1.2345D+12" | 1.2345E+12     |
//  | "  1E0000000" | 1              |
//  | "        .5 " | 0.5            |
//  | "         1." | 1              |
//  |---------------|----------------|
//
// D and d are the legacy double precision markers and mean the same as E.
//
// Implied Decimal
//
// When the mantissa has no decimal separator the rightmost d digits of the
// descriptor are the fraction, exponent or not. A separator in the field
// always wins over d.
//
//  | Descriptor | Field         | Value    |
//  |------------|---------------|----------|
//  | F11.0      | "      12345" | 12345    |
//  | F11.3      | "      12345" | 12.345   |
//  | F11.3      | "    12345E2" | 1234.5   |
//  | F11.3      | "     123.45" | 123.45   |
//  |------------|---------------|----------|
//
// Special Values
//
// nan, inf and infinity, in any case and with an optional sign, decode to the
// IEEE special values. The sign of nan is accepted and dropped.
//
// Rejections
//
// A field with no mantissa digit (".", "-.", "E1", "E+123", "e"), a marker or
// sign with no exponent digits ("1E", "1+", "1-"), a second separator, a
// second sign, a letter or any other byte outside the alphabet is rejected with
// a field.DecodeError naming the reason.
//
// Values past the float64 range become Inf or zero as IEEE rounding says;
// that is not a failure.
package float
