package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		raw         string
		want        float64
		wantPresent bool
		wantErr     error
	}{
		{raw: "12.5", want: 12.5, wantPresent: true},
		{raw: " 7 ", want: 7, wantPresent: true},
		{raw: "-3", want: -3, wantPresent: true},
		{raw: "1e2", want: 100, wantPresent: true},
		{raw: ""},
		{raw: "null"},
		{raw: "abc", wantErr: ErrNotNumeric},
		{raw: "NaN", wantErr: ErrNotNumeric},
		{raw: "12,5", wantErr: ErrNotNumeric},
		{raw: "Inf", wantErr: ErrNotNumeric},
		{raw: "0x1p3", wantErr: ErrNotNumeric},
		{raw: "1e400", wantErr: ErrNotNumeric},
		{raw: "-1e400", wantErr: ErrNotNumeric},
		{raw: "1e20000000", wantErr: ErrNotNumeric},
		{raw: "1e-20000000", want: 0, wantPresent: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, present, err := ParseNumeric(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPresent, present)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumericHugeExponentIsFast(t *testing.T) {
	start := time.Now()
	_, _, err := ParseNumeric("1e2147483647")
	assert.ErrorIs(t, err, ErrNotNumeric)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestParseNumericOrDefault(t *testing.T) {
	v, err := ParseNumericOrDefault("", 5)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = ParseNumericOrDefault("0", 5)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = ParseNumericOrDefault("x", 5)
	assert.ErrorIs(t, err, ErrNotNumeric)
}
