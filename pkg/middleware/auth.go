package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"trading-journal/pkg/common"
	"trading-journal/pkg/session"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*session.Session, error)
}

// NewAuthMiddleware requires a bearer token and stores the resulting session
// in the request context. A user-id header, when sent, must name the token's
// user.
func NewAuthMiddleware(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return unauthorized(c, "Missing bearer token")
			}

			ctx := c.Request().Context()
			sess, err := auth.Authenticate(ctx, strings.TrimSpace(token))
			if err != nil {
				return unauthorized(c, "Invalid or expired token")
			}

			if raw := c.Request().Header.Get(common.HeaderUserID); raw != "" {
				id, err := strconv.ParseUint(raw, 10, 64)
				if err != nil || uint(id) != sess.UserID {
					return unauthorized(c, "user-id header does not match token")
				}
			}

			c.SetRequest(c.Request().WithContext(session.NewContext(ctx, sess)))
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, Response{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
