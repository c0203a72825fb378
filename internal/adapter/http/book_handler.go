package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	catalogDomain "library-backend/internal/domain/catalog"
	catalogUC "library-backend/internal/usecase/catalog"
)

type CatalogService interface {
	Add(ctx context.Context, in catalogUC.AddBookInput) (*catalogDomain.Book, error)
	ListAvailable(ctx context.Context) ([]catalogDomain.Book, error)
}

type BookHandler struct{ uc CatalogService }

func NewBookHandler(uc CatalogService) *BookHandler { return &BookHandler{uc: uc} }

type addBookReq struct {
	TomNo  string  `json:"tom_no" validate:"required"`
	Title  string  `json:"title"  validate:"required"`
	Author string  `json:"author"`
	Year   int     `json:"year"   validate:"omitempty,gte=0"`
	Price  float64 `json:"price"  validate:"omitempty,gte=0"`
}

func (h *BookHandler) Add(c echo.Context) error {
	var req addBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	b, err := h.uc.Add(c.Request().Context(), catalogUC.AddBookInput(req))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BookHandler) ListAvailable(c echo.Context) error {
	books, err := h.uc.ListAvailable(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, books)
}
