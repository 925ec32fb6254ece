package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	s := &Session{UserID: 4, Token: "t"}
	got, ok := FromContext(NewContext(context.Background(), s))
	assert.True(t, ok)
	assert.Same(t, s, got)
}

func TestValid(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		s    *Session
		want bool
	}{
		{name: "nil", s: nil},
		{name: "no token", s: &Session{UserID: 1}},
		{name: "no user", s: &Session{Token: "t"}},
		{name: "expired", s: &Session{UserID: 1, Token: "t", ExpiresAt: now.Add(-time.Minute)}},
		{name: "live", s: &Session{UserID: 1, Token: "t", ExpiresAt: now.Add(time.Hour)}, want: true},
		{name: "no expiry", s: &Session{UserID: 1, Token: "t"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Valid(now))
		})
	}
}
