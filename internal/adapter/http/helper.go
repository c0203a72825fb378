package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	catalogUC "library-backend/internal/usecase/catalog"
	"library-backend/internal/usecase/circulation"
	readersUC "library-backend/internal/usecase/readers"

	"library-backend/internal/domain/catalog"
	"library-backend/internal/domain/loan"
	"library-backend/internal/domain/reader"
)

// domainError maps domain sentinels onto the NotFound / Conflict /
// Validation / DependencyFailure taxonomy the API exposes.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, reader.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrBookUnavailable),
		errors.Is(err, loan.ErrAlreadyReturned),
		errors.Is(err, loan.ErrNothingToPay),
		errors.Is(err, reader.ErrHasOpenLoans):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, circulation.ErrInvalidInput),
		errors.Is(err, readersUC.ErrInvalidInput),
		errors.Is(err, catalogUC.ErrInvalidInput):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, circulation.ErrDependency):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
