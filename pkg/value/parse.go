package value

import (
	"math"
	"strconv"
	"strings"
)

// toFloat extracts a finite float64 from a value. Numeric types convert
// directly; strings parse by their longest numeric prefix, so "15px"
// yields 15. Everything else, and non-finite results, report false.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		return parseLeadingFloat(x)
	}
	return 0, false
}

// parseLeadingFloat parses the longest prefix of s that forms a valid
// float, mirroring how CSS-style values like "15px" carry a number.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	for end := len(s); end > 0; end-- {
		f, err := strconv.ParseFloat(s[:end], 64)
		if err == nil {
			return finite(f)
		}
	}
	return 0, false
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
