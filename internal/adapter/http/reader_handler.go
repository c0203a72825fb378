package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	readerDomain "library-backend/internal/domain/reader"
	"library-backend/internal/usecase/readers"
)

type ReaderService interface {
	Register(ctx context.Context, in readers.RegisterInput) (*readerDomain.Reader, error)
	Delete(ctx context.Context, readerNo string) error
	Details(ctx context.Context, readerNo string) (*readers.Details, error)
}

type ReaderHandler struct{ uc ReaderService }

func NewReaderHandler(uc ReaderService) *ReaderHandler { return &ReaderHandler{uc: uc} }

type registerReaderReq struct {
	ReaderNo string `json:"reader_no" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
}

func (h *ReaderHandler) Register(c echo.Context) error {
	var req registerReaderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	r, err := h.uc.Register(c.Request().Context(), readers.RegisterInput(req))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *ReaderHandler) Details(c echo.Context) error {
	d, err := h.uc.Details(c.Request().Context(), c.Param("reader_no"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *ReaderHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("reader_no")); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
