package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wordhaze/wordhaze/pkg/cache"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	fontPath := filepath.Join(t.TempDir(), "test.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	opts = append([]Option{WithFont(fontPath)}, opts...)
	return New(logger, opts...)
}

func postCloud(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/cloud", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
}

func TestVersion(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["version"] == "" {
		t.Error("version missing from response")
	}
}

func TestCloudGeneratesPNG(t *testing.T) {
	s := testServer(t)
	w := postCloud(t, s, `{"text": "cloud cloud rain rain sky sky"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), pngMagic) {
		t.Error("response body is not a PNG")
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("missing request ID header")
	}
}

func TestCloudHonorsClientRequestID(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/cloud",
		strings.NewReader(`{"text": "sun sun moon moon"}`))
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("request ID = %q, want client-supplied-id", got)
	}
}

func TestCloudJPEGFormat(t *testing.T) {
	s := testServer(t)
	w := postCloud(t, s, `{"text": "wind wind wave wave", "format": "jpg"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("Content-Type = %q, want image/jpeg", ct)
	}
}

func TestCloudBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{
			name: "malformed json",
			body: `{"text": `,
			code: "INVALID_INPUT",
		},
		{
			name: "unknown field",
			body: `{"text": "hello", "font": "/etc/passwd"}`,
			code: "INVALID_INPUT",
		},
		{
			name: "empty text",
			body: `{"text": "   "}`,
			code: "INVALID_INPUT",
		},
		{
			name: "unsupported format",
			body: `{"text": "hello hello", "format": "svg"}`,
			code: "UNSUPPORTED_FORMAT",
		},
		{
			name: "negative width",
			body: `{"text": "hello hello", "width": -5}`,
			code: "INVALID_CONFIG",
		},
		{
			name: "prefer horizontal out of range",
			body: `{"text": "hello hello", "prefer_horizontal": 2.0}`,
			code: "INVALID_CONFIG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testServer(t)
			w := postCloud(t, s, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
			var resp errorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Error.Code != tt.code {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.code)
			}
			if resp.Error.Message == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestCloudCachesRenders(t *testing.T) {
	c := cache.NewMemoryCache()
	s := testServer(t, WithCache(c))

	body := `{"text": "fjord fjord glacier glacier", "seed": 7}`

	first := postCloud(t, s, body)
	if first.Code != http.StatusOK {
		t.Fatalf("first request: status %d", first.Code)
	}
	second := postCloud(t, s, body)
	if second.Code != http.StatusOK {
		t.Fatalf("second request: status %d", second.Code)
	}

	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("cached response differs from original")
	}
}

func TestCloudDistinctOptionsDistinctImages(t *testing.T) {
	s := testServer(t)

	a := postCloud(t, s, `{"text": "alpha alpha beta beta", "width": 400, "height": 200}`)
	b := postCloud(t, s, `{"text": "alpha alpha beta beta", "width": 200, "height": 100}`)
	if a.Code != http.StatusOK || b.Code != http.StatusOK {
		t.Fatalf("statuses = %d, %d", a.Code, b.Code)
	}
	if bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
		t.Error("different canvas sizes produced identical images")
	}
}

func TestCloudMissingFontIsServerError(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := New(logger, WithFont(filepath.Join(t.TempDir(), "absent.ttf")))

	w := postCloud(t, s, `{"text": "storm storm breeze breeze"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Error.Code != "FONT_NOT_FOUND" {
		t.Errorf("error code = %q, want FONT_NOT_FOUND", resp.Error.Code)
	}
}
