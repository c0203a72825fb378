package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	readerDomain "library-backend/internal/domain/reader"
	"library-backend/internal/usecase/readers"
)

type readerServiceMock struct {
	RegisterFn func(ctx context.Context, in readers.RegisterInput) (*readerDomain.Reader, error)
	DeleteFn   func(ctx context.Context, readerNo string) error
	DetailsFn  func(ctx context.Context, readerNo string) (*readers.Details, error)
}

func (m *readerServiceMock) Register(ctx context.Context, in readers.RegisterInput) (*readerDomain.Reader, error) {
	return m.RegisterFn(ctx, in)
}
func (m *readerServiceMock) Delete(ctx context.Context, readerNo string) error {
	return m.DeleteFn(ctx, readerNo)
}
func (m *readerServiceMock) Details(ctx context.Context, readerNo string) (*readers.Details, error) {
	return m.DetailsFn(ctx, readerNo)
}

func TestRegisterReader_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := NewReaderHandler(&readerServiceMock{
		RegisterFn: func(_ context.Context, in readers.RegisterInput) (*readerDomain.Reader, error) {
			return &readerDomain.Reader{ReaderNo: in.ReaderNo, FullName: in.FullName, LastRegistrationYear: time.Now().UTC().Year()}, nil
		},
	})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/readers", mustJSON(map[string]any{
		"reader_no": "123-2026",
		"full_name": "Ada Lovelace",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	var r readerDomain.Reader
	if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if r.ReaderNo != "123-2026" || r.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected reader: %+v", r)
	}
}

func TestRegisterReader_MissingNameIs422(t *testing.T) {
	e := newEchoWithValidator()
	h := NewReaderHandler(&readerServiceMock{
		RegisterFn: func(context.Context, readers.RegisterInput) (*readerDomain.Reader, error) {
			t.Fatalf("usecase must not be reached")
			return nil, nil
		},
	})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/readers", mustJSON(map[string]any{"reader_no": "123-2026"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestDeleteReader(t *testing.T) {
	e := newEchoWithValidator()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, stdhttp.StatusNoContent},
		{"open loans", readerDomain.ErrHasOpenLoans, stdhttp.StatusConflict},
		{"unknown", readerDomain.ErrNotFound, stdhttp.StatusNotFound},
	}
	for _, tc := range cases {
		h := NewReaderHandler(&readerServiceMock{
			DeleteFn: func(context.Context, string) error { return tc.err },
		})
		req := httptest.NewRequest(stdhttp.MethodDelete, "/api/readers/123-2026", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("reader_no")
		c.SetParamValues("123-2026")

		if err := h.Delete(c); err != nil {
			t.Fatalf("%s: Delete error: %v", tc.name, err)
		}
		if rec.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestReaderDetails(t *testing.T) {
	e := newEchoWithValidator()
	h := NewReaderHandler(&readerServiceMock{
		DetailsFn: func(_ context.Context, readerNo string) (*readers.Details, error) {
			if readerNo != "123-2026" {
				return nil, readerDomain.ErrNotFound
			}
			return &readers.Details{
				Reader: &readerDomain.Reader{ReaderNo: readerNo, FullName: "Ada Lovelace"},
			}, nil
		},
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/readers/123-2026", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reader_no")
	c.SetParamValues("123-2026")

	if err := h.Details(c); err != nil {
		t.Fatalf("Details error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var d readers.Details
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if d.Reader == nil || d.Reader.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected details: %+v", d)
	}
}
