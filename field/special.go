package field

import (
	"bytes"
	"math"
)

type special struct {
	name  string
	value func(negative bool) float64
}

func nan(bool) float64 {
	return math.NaN()
}

func inf(negative bool) float64 {
	if negative {
		return math.Inf(-1)
	}

	return math.Inf(1)
}

var specials = []special{
	{"nan", nan},
	{"inf", inf},
	{"infinity", inf},
}

// Special matches a normalized token against nan, inf and infinity, ignoring
// case, each optionally preceded by one sign.
//
// NaN ignores its sign and is always math.NaN(). Infinity takes the sign.
func Special(token []byte) (value float64, ok bool) {
	negative := false
	if len(token) > 0 && IsSign(token[0]) {
		negative = token[0] == '-'
		token = token[1:]
	}

	for _, s := range specials {
		if bytes.EqualFold(token, []byte(s.name)) {
			return s.value(negative), true
		}
	}

	return 0, false
}
