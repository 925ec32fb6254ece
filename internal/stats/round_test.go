package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixed2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integer", in: 15, want: "15.00"},
		{name: "below half in binary", in: 1.005, want: "1.00"},
		{name: "above half in binary", in: 1.015, want: "1.01"},
		{name: "exact half goes up", in: 0.125, want: "0.13"},
		{name: "exact negative half goes away from zero", in: -0.125, want: "-0.13"},
		{name: "exact half odd cent", in: 2.375, want: "2.38"},
		{name: "negative", in: -0.75, want: "-0.75"},
		{name: "repeating", in: 1.0 / 7, want: "0.14"},
		{name: "nan", in: math.NaN(), want: "NaN"},
		{name: "infinity", in: math.Inf(1), want: "Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fixed2(tt.in))
		})
	}
}

func TestRoundCentsStaysHalfUp(t *testing.T) {
	assert.Equal(t, 1.01, roundCents(1.005))
	assert.Equal(t, -1.01, roundCents(-1.005))
}
