package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
	"trading-journal/pkg/logger"
)

func (h *HttpAPIHandler) SetupJobs(protected *echo.Group) {
	v1 := protected.Group("/v1/jobs")
	{
		v1.POST("/snapshot", h.runSnapshot)
	}
}

func (h *HttpAPIHandler) runSnapshot(c echo.Context) error {
	response := dto.NewBaseResponse(http.StatusOK, "Snapshot completed", nil)
	if err := h.service.SnapshotService.ExecuteForUser(c.Request().Context(), currentSession(c).UserID); err != nil {
		h.log.ErrorContext(c.Request().Context(), "Snapshot run failed", logger.ErrorField(err))
		response.Code = http.StatusInternalServerError
		response.Message = err.Error()
	}
	return c.JSON(response.Code, response)
}
