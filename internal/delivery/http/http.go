package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"trading-journal/config"
	"trading-journal/internal/dto"
	"trading-journal/internal/service"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/middleware"
	"trading-journal/pkg/ratelimit"
	"trading-journal/pkg/session"
)

type HttpAPIHandler struct {
	cfg       *config.Config
	log       *logger.Logger
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	echo *echo.Echo,
	validator *goValidator.Validate,
	service *service.Service,
) *HttpAPIHandler {
	return &HttpAPIHandler{
		cfg:       cfg,
		log:       log,
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api")
	h.SetupHealth(base)

	credentials := ratelimit.NewLimiterStore(
		rate.Limit(h.cfg.API.RateLimit.RequestsPerSecond/10),
		max(h.cfg.API.RateLimit.Burst/3, 1),
		h.cfg.API.RateLimit.ExpiresIn,
	)
	h.SetupAuth(base, middleware.NewCredentialLimiter(credentials))

	protected := base.Group("", middleware.NewAuthMiddleware(h.service.AuthService))
	h.SetupMe(protected)
	h.SetupAccounts(protected)
	h.SetupTrades(protected)
	h.SetupStatistics(protected)
	h.SetupJobs(protected)
}

// bind decodes and validates the request body into req. A non-nil result is
// the 400 response to send.
func (h *HttpAPIHandler) bind(c echo.Context, req interface{}) *dto.BaseResponse {
	if err := c.Bind(req); err != nil {
		return dto.NewBadRequestResponse("invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return dto.NewBadRequestResponse(err.Error())
	}
	return nil
}

// respondError maps service errors to status codes. Unexpected errors are
// logged and hidden behind a generic 500.
func (h *HttpAPIHandler) respondError(c echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrDuplicate):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		code = http.StatusNotFound
	default:
		h.log.ErrorContext(c.Request().Context(), "Request failed",
			logger.ErrorField(err),
			logger.StringField("path", c.Path()),
		)
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
	}
	return c.JSON(code, dto.NewErrorResponse(code, err.Error()))
}

func currentSession(c echo.Context) *session.Session {
	sess, _ := session.FromContext(c.Request().Context())
	return sess
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
