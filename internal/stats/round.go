package stats

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

func isSpecial(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// roundCents rounds half away from zero at the cent. NaN and infinities pass through.
func roundCents(v float64) float64 {
	if isSpecial(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// fixed2 renders v with exactly two decimals the way Number.toFixed(2) does:
// the exact binary value is rounded, so 1.005 gives "1.00". Exact halves at
// the third decimal (odd multiples of 1/8) go away from zero.
func fixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if t := v * 8; math.Abs(v) < 1<<50 && t == math.Trunc(t) && math.Mod(t, 2) != 0 {
		cents := math.Floor(math.Abs(v)*100) + 1
		s := strconv.FormatFloat(cents/100, 'f', 2, 64)
		if v < 0 {
			s = "-" + s
		}
		return s
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// percent returns round(part/whole*100), 0 when whole is 0.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	ratio := float64(part) / float64(whole) * 100
	return int(decimal.NewFromFloat(ratio).Round(0).IntPart())
}

// sum accumulates exactly in decimal; NaN and infinities are kept apart so
// they still propagate the way float addition would.
type sum struct {
	exact   decimal.Decimal
	special float64
}

func newSum(start float64) *sum {
	s := &sum{exact: decimal.Zero}
	s.add(start)
	return s
}

func (s *sum) add(v float64) {
	if isSpecial(v) {
		s.special += v
		return
	}
	s.exact = s.exact.Add(decimal.NewFromFloat(v))
}

func (s *sum) value() float64 {
	return s.exact.InexactFloat64() + s.special
}
