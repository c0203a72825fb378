package http

import (
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
)

type resolverMock struct {
	PathFn func(ref string) (string, error)
}

func (m *resolverMock) Path(ref string) (string, error) { return m.PathFn(ref) }

func TestServeSignature(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sig.png")
	if err := os.WriteFile(file, []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	e := echo.New()
	h := NewSignatureHandler(&resolverMock{
		PathFn: func(ref string) (string, error) {
			if ref != "sig.png" {
				return "", errors.New("no such artifact")
			}
			return file, nil
		},
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/signatures/sig.png", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("filename")
	c.SetParamValues("sig.png")

	if err := h.Serve(c); err != nil {
		t.Fatalf("Serve error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "png-bytes" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestServeSignature_Missing(t *testing.T) {
	e := echo.New()
	h := NewSignatureHandler(&resolverMock{
		PathFn: func(string) (string, error) { return "", errors.New("no such artifact") },
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/signatures/../../etc/passwd", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("filename")
	c.SetParamValues("../../etc/passwd")

	if err := h.Serve(c); err != nil {
		t.Fatalf("Serve error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
