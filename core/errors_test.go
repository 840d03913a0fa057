package core

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIsNotFoundError_WithExactError(t *testing.T) {
	if !IsNotFoundError(ErrNotFound) {
		t.Error("expected true for ErrNotFound")
	}
}

func TestIsNotFoundError_WithDifferentError(t *testing.T) {
	if IsNotFoundError(errors.New("some other error")) {
		t.Error("expected false for unrelated error")
	}
}

func TestIsNotFoundError_WithNil(t *testing.T) {
	if IsNotFoundError(nil) {
		t.Error("expected false for nil error")
	}
}

func TestWriteNotFound_ProdIsPlain(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()

	WriteNotFound(rec, req, "prod", "")

	resp := rec.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "dev mode") {
		t.Error("prod 404 should not mention dev mode")
	}
}

func TestWriteNotFound_DevRendersDiagnostics(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()

	WriteNotFound(rec, req, "dev", "abc-123")

	resp := rec.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "no-store" {
		t.Errorf("expected no-store Cache-Control, got %q", cc)
	}

	body, _ := io.ReadAll(resp.Body)
	page := string(body)

	for _, want := range []string{"404", "GET", "/missing", "abc-123"} {
		if !strings.Contains(page, want) {
			t.Errorf("dev 404 page missing %q:\n%s", want, page)
		}
	}
}

func TestWriteNotFound_DevWithoutRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	WriteNotFound(rec, req, "dev", "")

	body, _ := io.ReadAll(rec.Result().Body)
	if strings.Contains(string(body), "Request ID") {
		t.Error("expected no request id block when id is empty")
	}
}
