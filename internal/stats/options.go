package stats

import (
	"fmt"
	"strings"
	"time"
)

// MissingDatePolicy decides where closed trades without trade_date and
// entry_date land in the equity curve ordering.
type MissingDatePolicy string

const (
	// MissingDateKeepPosition leaves undated trades at their input index and
	// sorts the dated trades around them.
	MissingDateKeepPosition MissingDatePolicy = "keep_position"
	MissingDateFirst        MissingDatePolicy = "first"
	MissingDateLast         MissingDatePolicy = "last"
)

func ParseMissingDatePolicy(s string) (MissingDatePolicy, error) {
	switch MissingDatePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", MissingDateKeepPosition:
		return MissingDateKeepPosition, nil
	case MissingDateFirst:
		return MissingDateFirst, nil
	case MissingDateLast:
		return MissingDateLast, nil
	default:
		return "", fmt.Errorf("unknown missing date policy %q", s)
	}
}

type options struct {
	location     *time.Location
	now          func() time.Time
	missingDates MissingDatePolicy
}

type Option func(*options)

// WithLocation sets the time zone used for equity curve labels.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithClock replaces time.Now for trades that carry no date at all.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithMissingDatePolicy(p MissingDatePolicy) Option {
	return func(o *options) {
		if p != "" {
			o.missingDates = p
		}
	}
}

func newOptions(opts ...Option) options {
	o := options{
		location:     time.UTC,
		now:          time.Now,
		missingDates: MissingDateKeepPosition,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
