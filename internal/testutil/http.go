package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
)

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertBody checks that the response body matches exactly.
func (r *ResponseRecorder) AssertBody(t interface{ Errorf(string, ...any) }, expected string) {
	if got := r.Body.String(); got != expected {
		t.Errorf("body: got %q, want %q", got, expected)
	}
}

// AssertContentType checks the media type of the Content-Type header,
// ignoring parameters such as charset.
func (r *ResponseRecorder) AssertContentType(t interface{ Errorf(string, ...any) }, expected string) {
	ct := r.Header().Get("Content-Type")
	mediaType, _, _ := strings.Cut(ct, ";")
	if strings.TrimSpace(mediaType) != expected {
		t.Errorf("Content-Type: got %q, want %q", ct, expected)
	}
}

// AssertNotContains checks that the response body does not contain s.
func (r *ResponseRecorder) AssertNotContains(t interface{ Errorf(string, ...any) }, s string) {
	if strings.Contains(r.Body.String(), s) {
		t.Errorf("response body unexpectedly contains %q", s)
	}
}
