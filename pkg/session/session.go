// Package session carries the authenticated caller through a request.
package session

import (
	"context"
	"time"
)

type Session struct {
	UserID    uint      `json:"user_id" yaml:"user_id"`
	Email     string    `json:"email" yaml:"email"`
	Username  string    `json:"username,omitempty" yaml:"username,omitempty"`
	Token     string    `json:"-" yaml:"token"`
	ExpiresAt time.Time `json:"expires_at" yaml:"expires_at"`
}

// Valid reports whether the session holds a token that has not expired at now.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.Token == "" || s.UserID == 0 {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
