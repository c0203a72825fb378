package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ArtifactResolver turns a stored signature reference into a servable
// filesystem path.
type ArtifactResolver interface {
	Path(ref string) (string, error)
}

type SignatureHandler struct{ store ArtifactResolver }

func NewSignatureHandler(store ArtifactResolver) *SignatureHandler {
	return &SignatureHandler{store: store}
}

func (h *SignatureHandler) Serve(c echo.Context) error {
	p, err := h.store.Path(c.Param("filename"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "signature not found"})
	}
	return c.File(p)
}
