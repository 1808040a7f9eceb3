package svg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadLength is wrapped by every length parse failure.
var ErrBadLength = errors.New("malformed length")

// recognized CSS/SVG unit suffixes
var units = map[string]bool{
	"px": true,
	"pt": true,
	"pc": true,
	"mm": true,
	"cm": true,
	"in": true,
	"em": true,
	"ex": true,
	"%":  true,
}

// Length is a parsed dimension token: a numeric value plus an optional
// unit suffix. A zero Unit means user units.
type Length struct {
	Value float64
	Unit  string
}

func (l Length) String() string {
	return formatFloat(l.Value) + l.Unit
}

// ParseLength parses a dimension token such as "800", "800px" or "100%".
// The numeric part must lead the token; the remainder, if any, must be a
// recognized unit suffix.
func ParseLength(token string) (Length, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return Length{}, fmt.Errorf("%w: empty token", ErrBadLength)
	}

	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	start := i
	dot := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' && !dot {
			dot = true
			i++
			continue
		}
		break
	}
	if i == start {
		return Length{}, fmt.Errorf("%w: %q does not start with a number", ErrBadLength, token)
	}

	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q: %v", ErrBadLength, token, err)
	}

	unit := s[i:]
	if unit != "" && !units[unit] {
		return Length{}, fmt.Errorf("%w: %q has unrecognized unit %q", ErrBadLength, token, unit)
	}

	return Length{Value: value, Unit: unit}, nil
}

// formatFloat renders a float in its shortest decimal form, so whole
// numbers serialize without a trailing ".0".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
