package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trading-journal/internal/dto"
)

func (h *HttpAPIHandler) SetupAccounts(protected *echo.Group) {
	accounts := protected.Group("/accounts")
	accounts.GET("", h.listAccounts)
	accounts.POST("", h.createAccount)
	accounts.DELETE("/:id", h.deleteAccount)
}

func (h *HttpAPIHandler) listAccounts(c echo.Context) error {
	accounts, err := h.service.AccountService.List(c.Request().Context(), currentSession(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", accounts))
}

func (h *HttpAPIHandler) createAccount(c echo.Context) error {
	req := new(dto.CreateAccountRequest)
	if resp := h.bind(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	account, err := h.service.AccountService.Create(c.Request().Context(), currentSession(c).UserID, *req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NewCreatedResponse("Account created", account))
}

func (h *HttpAPIHandler) deleteAccount(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid account id"))
	}

	if err := h.service.AccountService.Delete(c.Request().Context(), currentSession(c).UserID, id); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Account deleted", nil))
}
