package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
)

func (h *HttpAPIHandler) SetupStatistics(protected *echo.Group) {
	protected.GET("/accounts/:id/statistics", h.accountStatistics)
	protected.GET("/accounts/:id/statistics/snapshot", h.accountSnapshot)
	protected.POST("/statistics/preview", h.previewStatistics)
}

func (h *HttpAPIHandler) accountStatistics(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid account id"))
	}

	report, err := h.service.StatisticsService.AccountReport(c.Request().Context(), currentSession(c).UserID, id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", report))
}

func (h *HttpAPIHandler) accountSnapshot(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid account id"))
	}

	snapshot, err := h.service.StatisticsService.Snapshot(c.Request().Context(), currentSession(c).UserID, id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", snapshot))
}

func (h *HttpAPIHandler) previewStatistics(c echo.Context) error {
	req := new(dto.PreviewRequest)
	if resp := h.bind(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	report := h.service.StatisticsService.Preview(c.Request().Context(), *req)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", report))
}
