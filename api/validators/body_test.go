package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
)

type samplePayload struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"min=1"`
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"x","count":2,"extra":true}`))
	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	if err == nil {
		t.Fatal("expected unknown field rejection")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyValidates(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"count":0}`))
	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %v", typed.Details())
	}
	if details["name"] != "is required" {
		t.Fatalf("unexpected message for name: %q", details["name"])
	}
}

func TestDecodeJSONBodyLenientDropsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("PUT", "/", strings.NewReader(`{"name":"x","count":3,"quantity":999,"productId":"abc"}`))
	var dest samplePayload
	if err := DecodeJSONBodyLenient(r, &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.Name != "x" || dest.Count != 3 {
		t.Fatalf("unexpected decode result %+v", dest)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  ", 3); got != "hel" {
		t.Fatalf("unexpected sanitize result %q", got)
	}
}

func TestBearerToken(t *testing.T) {
	if got := BearerToken("Bearer abc.def"); got != "abc.def" {
		t.Fatalf("unexpected token %q", got)
	}
	if got := BearerToken("abc"); got != "" {
		t.Fatalf("expected empty for non-bearer header, got %q", got)
	}
}
