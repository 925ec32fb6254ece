package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
)

func (h *HttpAPIHandler) SetupAuth(base *echo.Group, limiter echo.MiddlewareFunc) {
	authGroup := base.Group("/auth")
	authGroup.POST("/register", h.register, limiter)
	authGroup.POST("/login", h.login, limiter)
}

func (h *HttpAPIHandler) SetupMe(protected *echo.Group) {
	protected.GET("/auth/me", h.me)
}

func (h *HttpAPIHandler) register(c echo.Context) error {
	req := new(dto.RegisterRequest)
	if resp := h.bind(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	resp, err := h.service.AuthService.Register(c.Request().Context(), *req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NewCreatedResponse("User registered", resp))
}

func (h *HttpAPIHandler) login(c echo.Context) error {
	req := new(dto.LoginRequest)
	if resp := h.bind(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	resp, err := h.service.AuthService.Login(c.Request().Context(), *req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Logged in", resp))
}

func (h *HttpAPIHandler) me(c echo.Context) error {
	user, err := h.service.AuthService.Me(c.Request().Context(), currentSession(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", user))
}
