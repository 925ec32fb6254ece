package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
	"trading-journal/internal/stats"
)

func (h *HttpAPIHandler) SetupTrades(protected *echo.Group) {
	trades := protected.Group("/trades")
	trades.GET("", h.listTrades)
	trades.POST("", h.createTrade)
	trades.PUT("/:id", h.updateTrade)
	trades.DELETE("/:id", h.deleteTrade)
}

func (h *HttpAPIHandler) listTrades(c echo.Context) error {
	var accountID *uint
	if raw := c.QueryParam("account_id"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid account_id"))
		}
		accountID = &id
	}
	status := c.QueryParam("status")
	switch stats.Status(status) {
	case "", stats.StatusOpen, stats.StatusClosed, stats.StatusCancelled:
	default:
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid status"))
	}

	trades, err := h.service.TradeService.List(c.Request().Context(), currentSession(c).UserID, accountID, status)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", trades))
}

func (h *HttpAPIHandler) createTrade(c echo.Context) error {
	req := new(dto.CreateTradeRequest)
	if resp := h.bind(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	trade, err := h.service.TradeService.Create(c.Request().Context(), currentSession(c).UserID, *req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NewCreatedResponse("Trade created", trade))
}

func (h *HttpAPIHandler) updateTrade(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}
	req := new(dto.UpdateTradeRequest)
	if resp := h.bind(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	trade, err := h.service.TradeService.Update(c.Request().Context(), currentSession(c).UserID, id, *req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trade updated", trade))
}

func (h *HttpAPIHandler) deleteTrade(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}

	if err := h.service.TradeService.Delete(c.Request().Context(), currentSession(c).UserID, id); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trade deleted", nil))
}
