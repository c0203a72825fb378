package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"library-backend/internal/domain/loan"
	"library-backend/internal/usecase/circulation"
)

// CirculationService is what the circulation endpoints need from the
// usecase layer.
type CirculationService interface {
	Borrow(ctx context.Context, in circulation.BorrowInput) (*circulation.LoanDTO, error)
	Return(ctx context.Context, loanID string) (*circulation.LoanDTO, error)
	PayFine(ctx context.Context, loanID string) (*circulation.LoanDTO, error)
	Get(ctx context.Context, loanID string) (*circulation.LoanDTO, error)
	ListBorrowed(ctx context.Context, query string) ([]loan.BorrowedRow, error)
}

type CirculationHandler struct{ uc CirculationService }

func NewCirculationHandler(uc CirculationService) *CirculationHandler {
	return &CirculationHandler{uc: uc}
}

type borrowReq struct {
	BookTomNo string `json:"book_tom_no" validate:"required"`
	ReaderNo  string `json:"reader_no"   validate:"required"`
	Signature string `json:"signature"   validate:"omitempty,pngdata"`
}

func (h *CirculationHandler) Borrow(c echo.Context) error {
	var req borrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Borrow(c.Request().Context(), circulation.BorrowInput{
		BookTomNo: req.BookTomNo,
		ReaderNo:  req.ReaderNo,
		Signature: req.Signature,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CirculationHandler) Return(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	}
	dto, err := h.uc.Return(c.Request().Context(), loanID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CirculationHandler) PayFine(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	}
	dto, err := h.uc.PayFine(c.Request().Context(), loanID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CirculationHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// BorrowedBooks serves the open-loan listing behind the return page, with
// an indicative fine per row.
func (h *CirculationHandler) BorrowedBooks(c echo.Context) error {
	rows, err := h.uc.ListBorrowed(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
