package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		LoanID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{LoanID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{LoanID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "LoanID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestPngDataValidation(t *testing.T) {
	type P struct {
		Signature string `validate:"pngdata"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Signature: "data:image/png;base64,iVBORw0KGgo="}); err != nil {
		t.Fatalf("expected valid pngdata, got err: %v", err)
	}

	for _, s := range []string{
		"",                             // empty
		"iVBORw0KGgo=",                 // bare base64
		"data:image/jpeg;base64,/9j/",  // wrong mime
		"data:text/plain;base64,aGk=",  // not an image
		" data:image/png;base64,aGk=",  // leading space
	} {
		err := cv.Validate(P{Signature: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Signature", "base64 PNG data URL") {
			t.Fatalf("expected pngdata message for %q, got: %+v", s, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Title string  `validate:"required"`
		Year  int     `validate:"gte=0"`
		Price float64 `validate:"lte=10000"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Title: "",    // required
		Year:  -1,    // gte=0
		Price: 10001, // lte=10000
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Title", "is required") {
		t.Fatalf("missing 'is required' for Title: %+v", fe)
	}
	if !containsFieldMsg(fe, "Year", "greater than or equal to 0") {
		t.Fatalf("missing gte message for Year: %+v", fe)
	}
	if !containsFieldMsg(fe, "Price", "less than or equal to 10000") {
		t.Fatalf("missing lte message for Price: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
