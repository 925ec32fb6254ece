package journalclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-journal/internal/stats"
	"trading-journal/pkg/auth"
	"trading-journal/pkg/session"
)

func newAPI(t *testing.T, token string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, code int, message string, data interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": code, "message": message, "data": data})
	}
	authed := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+token && r.Header.Get("user-id") == "7"
	}

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "password1" {
			write(w, http.StatusUnauthorized, "incorrect email or password", nil)
			return
		}
		write(w, http.StatusOK, "Logged in", map[string]interface{}{
			"token": token,
			"user":  map[string]interface{}{"id": 7, "email": body["email"], "username": "alice"},
		})
	})
	mux.HandleFunc("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			write(w, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}
		write(w, http.StatusOK, "OK", []map[string]interface{}{{"id": 3, "account_name": "main", "initial_capital": 1000}})
	})
	mux.HandleFunc("/api/accounts/3/statistics", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			write(w, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}
		write(w, http.StatusOK, "OK", stats.Build(1000, nil))
	})
	mux.HandleFunc("/api/accounts/4/statistics", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusForbidden, "account 4: access denied", nil)
	})
	mux.HandleFunc("/api/trades", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			write(w, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}
		q := r.URL.Query()
		write(w, http.StatusOK, "OK", []map[string]interface{}{
			{"id": 1, "account_id": 3, "asset": q.Get("account_id") + "/" + q.Get("status"), "status": "closed"},
		})
	})
	mux.HandleFunc("/api/trades/9", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			write(w, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}
		switch r.Method {
		case http.MethodPut:
			var body map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&body)
			write(w, http.StatusOK, "Trade updated", map[string]interface{}{
				"id": 9, "asset": "BTC", "status": body["status"], "pnl_usd": body["pnl_usd"], "take_profit": body["take_profit"],
			})
		case http.MethodDelete:
			write(w, http.StatusOK, "Trade deleted", nil)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/trades/10", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusForbidden, "trade 10: access denied", nil)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLoginAndCalls(t *testing.T) {
	token, exp, err := auth.NewTokenIssuer("s", time.Hour).Issue(7, "a@x.io")
	require.NoError(t, err)
	srv := newAPI(t, token)
	ctx := context.Background()

	c := New(srv.URL+"/api", time.Second, nil)
	_, err = c.Accounts(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	sess, err := c.Login(ctx, "a@x.io", "password1")
	require.NoError(t, err)
	assert.Equal(t, uint(7), sess.UserID)
	assert.Equal(t, token, sess.Token)
	assert.WithinDuration(t, exp, sess.ExpiresAt, time.Second)

	accounts, err := c.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "main", accounts[0].AccountName)

	report, err := c.Statistics(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, report.Overview.InitialCapital)

	_, err = c.Statistics(ctx, 4)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "access denied")
}

func TestClientLoginRejected(t *testing.T) {
	srv := newAPI(t, "tok")
	c := New(srv.URL+"/api", time.Second, nil)

	_, err := c.Login(context.Background(), "a@x.io", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClientWithSavedSession(t *testing.T) {
	srv := newAPI(t, "saved")
	c := New(srv.URL+"/api", time.Second, &session.Session{UserID: 7, Token: "saved", ExpiresAt: time.Now().Add(time.Hour)})

	accounts, err := c.Accounts(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	expired := New(srv.URL+"/api", time.Second, &session.Session{UserID: 7, Token: "saved", ExpiresAt: time.Now().Add(-time.Hour)})
	_, err = expired.Accounts(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientTrades(t *testing.T) {
	srv := newAPI(t, "saved")
	ctx := context.Background()
	c := New(srv.URL+"/api", time.Second, &session.Session{UserID: 7, Token: "saved", ExpiresAt: time.Now().Add(time.Hour)})

	trades, err := c.Trades(ctx, 3, "closed")
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "3/closed", trades[0].Asset)

	all, err := c.Trades(ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "/", all[0].Asset)

	updated, err := c.UpdateTrade(ctx, 9, map[string]interface{}{"status": "closed", "pnl_usd": 12.5, "take_profit": nil})
	require.NoError(t, err)
	assert.Equal(t, "closed", updated.Status)
	require.NotNil(t, updated.PnLUSD)
	assert.Equal(t, 12.5, *updated.PnLUSD)
	assert.Nil(t, updated.TakeProfit)

	require.NoError(t, c.DeleteTrade(ctx, 9))

	err = c.DeleteTrade(ctx, 10)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	_, err = New(srv.URL+"/api", time.Second, nil).Trades(ctx, 0, "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
