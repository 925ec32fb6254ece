package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
)

func (h *HttpAPIHandler) SetupHealth(base *echo.Group) {
	base.GET("/health", h.health)
}

func (h *HttpAPIHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("API is running", map[string]string{"status": "OK"}))
}
