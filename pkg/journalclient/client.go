// Package journalclient talks to the journal REST API on behalf of the CLI.
package journalclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/stats"
	"trading-journal/pkg/httpclient"
	"trading-journal/pkg/session"
)

var ErrNotLoggedIn = errors.New("not logged in: run `client login` first")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type Client struct {
	baseURL string
	timeout time.Duration
	http    httpclient.HTTPClient
	session *session.Session
}

// New returns a client; sess may be nil for the unauthenticated calls.
func New(baseURL string, timeout time.Duration, sess *session.Session) *Client {
	token := ""
	if sess != nil {
		token = sess.Token
	}
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http:    httpclient.New(baseURL, timeout, token),
		session: sess,
	}
}

// Login authenticates and returns the session to persist. The expiry is read
// from the token without verifying it; the server stays the authority.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, error) {
	var out envelope[dto.AuthResponse]
	resp, err := c.http.Post(ctx, "/auth/login", dto.LoginRequest{Email: email, Password: password}, nil, &out)
	if err := check(resp, err, out.Message); err != nil {
		return nil, err
	}

	sess := &session.Session{
		UserID:   out.Data.User.ID,
		Email:    out.Data.User.Email,
		Username: out.Data.User.Username,
		Token:    out.Data.Token,
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(out.Data.Token, &claims); err == nil && claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}

	c.session = sess
	c.http = httpclient.New(c.baseURL, c.timeout, sess.Token)
	return sess, nil
}

func (c *Client) Accounts(ctx context.Context) ([]model.Account, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	var out envelope[[]model.Account]
	resp, err := c.http.Get(ctx, "/accounts", nil, c.headers(), &out)
	if err := check(resp, err, out.Message); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) Statistics(ctx context.Context, accountID uint) (*stats.Report, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	var out envelope[stats.Report]
	path := "/accounts/" + strconv.FormatUint(uint64(accountID), 10) + "/statistics"
	resp, err := c.http.Get(ctx, path, nil, c.headers(), &out)
	if err := check(resp, err, out.Message); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Trades lists the user's trades; accountID 0 means every account and an
// empty status means every status.
func (c *Client) Trades(ctx context.Context, accountID uint, status string) ([]model.Trade, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	query := map[string]string{}
	if accountID != 0 {
		query["account_id"] = strconv.FormatUint(uint64(accountID), 10)
	}
	if status != "" {
		query["status"] = status
	}
	var out envelope[[]model.Trade]
	resp, err := c.http.Get(ctx, "/trades", query, c.headers(), &out)
	if err := check(resp, err, out.Message); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// UpdateTrade sends only the given fields; a nil value clears the column.
func (c *Client) UpdateTrade(ctx context.Context, tradeID uint, fields map[string]interface{}) (*model.Trade, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	var out envelope[model.Trade]
	resp, err := c.http.Put(ctx, tradePath(tradeID), fields, c.headers(), &out)
	if err := check(resp, err, out.Message); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteTrade(ctx context.Context, tradeID uint) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	var out envelope[any]
	resp, err := c.http.Delete(ctx, tradePath(tradeID), c.headers(), &out)
	return check(resp, err, out.Message)
}

func tradePath(id uint) string {
	return "/trades/" + strconv.FormatUint(uint64(id), 10)
}

func (c *Client) requireSession() error {
	if !c.session.Valid(time.Now()) {
		return ErrNotLoggedIn
	}
	return nil
}

func (c *Client) headers() map[string]string {
	return map[string]string{"user-id": strconv.FormatUint(uint64(c.session.UserID), 10)}
}

func check(resp *httpclient.BaseResponse, err error, message string) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if !resp.IsSuccess() {
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}
	return nil
}
