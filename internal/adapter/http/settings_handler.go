package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-backend/internal/domain/settings"
)

type SettingsHandler struct{ svc *settings.Service }

func NewSettingsHandler(svc *settings.Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SettingsHandler) Update(c echo.Context) error {
	var values map[string]string
	if err := c.Bind(&values); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if len(values) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no settings supplied"})
	}
	if err := h.svc.Update(c.Request().Context(), values); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return h.List(c)
}
