package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"trading-journal/internal/stats"
)

// NullableFloat accepts a JSON number, a numeric string, "" or null.
// Set reports whether the key was present at all.
type NullableFloat struct {
	Value float64
	Valid bool
	Set   bool
}

func Float(v float64) NullableFloat {
	return NullableFloat{Value: v, Valid: true, Set: true}
}

func (n *NullableFloat) UnmarshalJSON(b []byte) error {
	n.Set = true
	raw := string(b)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = s
	}
	v, ok, err := stats.ParseNumeric(raw)
	if err != nil {
		return err
	}
	n.Value, n.Valid = v, ok
	return nil
}

func (n NullableFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns nil for an absent value.
func (n NullableFloat) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// NonZeroPtr also maps 0 to nil; journal entry treats a zero price as unset.
func (n NullableFloat) NonZeroPtr() *float64 {
	if !n.Valid || n.Value == 0 {
		return nil
	}
	return n.Ptr()
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// NullableTime accepts RFC 3339 timestamps, naive timestamps and plain
// dates; naive values are read as UTC.
type NullableTime struct {
	Time  time.Time
	Valid bool
	Set   bool
}

func (n *NullableTime) UnmarshalJSON(b []byte) error {
	n.Set = true
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		n.Valid = false
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(*s)); err == nil {
			n.Time, n.Valid = t, true
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", *s)
}

func (n NullableTime) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Time)
}

func (n NullableTime) Ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}
