package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Message string `json:"message"`
}

func TestRestyClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(payload{Message: "no token"})
			return
		}
		_ = json.NewEncoder(w).Encode(payload{Message: r.Method + " " + r.URL.Path + "?" + r.URL.RawQuery})
	}))
	defer srv.Close()

	ctx := context.Background()
	c := New(srv.URL, time.Second, "tok")

	var got payload
	resp, err := c.Get(ctx, "/x", map[string]string{"a": "1"}, nil, &got)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "GET /x?a=1", got.Message)

	resp, err = c.Post(ctx, "/y", map[string]int{"n": 1}, nil, &got)
	require.NoError(t, err)
	assert.Equal(t, "POST /y?", got.Message)

	anon := New(srv.URL, time.Second, "")
	resp, err = anon.Delete(ctx, "/z", nil, &got)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "no token", got.Message)
}
