package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_DSN(t *testing.T) {
	db := Database{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "journal", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5433/journal?sslmode=disable", db.DSN())
}

func TestStats_Location(t *testing.T) {
	loc, err := Stats{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = Stats{TimeZone: "Europe/Paris"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())

	_, err = Stats{TimeZone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Auth:      Auth{JWTSecret: "secret"},
			Scheduler: Scheduler{MaxConcurrency: 2},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: "jwt_secret"},
		{name: "no concurrency", mutate: func(c *Config) { c.Scheduler.MaxConcurrency = 0 }, wantErr: "max_concurrency"},
		{name: "bad time zone", mutate: func(c *Config) { c.Stats.TimeZone = "Nowhere/City" }, wantErr: "time zone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
