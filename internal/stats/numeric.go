package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrNotNumeric = errors.New("value is not numeric")

// ParseNumeric coerces a raw numeric token (a JSON number or the contents of
// a JSON string). Empty input and null report present=false; anything that
// is not a finite decimal is an error rather than a silent NaN or infinity.
func ParseNumeric(raw string) (value float64, present bool, err error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "null" {
		return 0, false, nil
	}
	// decimal only checks the grammar (no hex, Inf or NaN forms); the value
	// comes from ParseFloat, which stays cheap for any exponent.
	if _, err := decimal.NewFromString(s); err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false, fmt.Errorf("%w: %q out of range", ErrNotNumeric, raw)
	}
	return v, true, nil
}

// ParseNumericOrDefault is ParseNumeric with def substituted for absent input.
func ParseNumericOrDefault(raw string, def float64) (float64, error) {
	v, ok, err := ParseNumeric(raw)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}
