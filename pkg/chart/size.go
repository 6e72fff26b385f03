package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSize normalizes a CSS length. Integers are pixels, floats are
// fractions of the container ("0.5" becomes "50%"), and strings get a "px"
// suffix unless they already end in "px" or "%".
func ParseSize(v any) (string, error) {
	switch s := v.(type) {
	case int:
		return strconv.Itoa(s) + "px", nil
	case int32:
		return strconv.Itoa(int(s)) + "px", nil
	case int64:
		return strconv.FormatInt(s, 10) + "px", nil
	case float32:
		return percent(float64(s))
	case float64:
		return percent(s)
	case string:
		s = strings.TrimSpace(s)
		if s == "" {
			return "", fmt.Errorf("%w: empty string", ErrInvalidSize)
		}
		if strings.HasSuffix(s, "px") || strings.HasSuffix(s, "%") {
			return s, nil
		}
		return s + "px", nil
	default:
		return "", fmt.Errorf("%w: %T", ErrInvalidSize, v)
	}
}

func percent(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidSize, f)
	}
	return fmt.Sprintf("%.0f%%", f*100), nil
}
