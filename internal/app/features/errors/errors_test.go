package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	errorsfeature "github.com/dalemusser/persona/internal/app/features/errors"
	"github.com/dalemusser/persona/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogServerError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	errLog := errorsfeature.NewErrorLogger(zap.New(core))

	req := testutil.NewRequest("GET", "/purpose")
	rec := testutil.NewRecorder()

	errLog.LogServerError(rec, req, "lookup failed", stderrors.New("secret detail"))

	rec.AssertStatus(t, http.StatusInternalServerError)
	rec.AssertContentType(t, "text/plain")
	rec.AssertBody(t, "Internal Server Error")
	rec.AssertNotContains(t, "secret detail")

	entries := logs.FilterMessage("lookup failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Errorf("level: got %v, want error", entries[0].Level)
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/purpose" {
		t.Errorf("path field: got %v", fields["path"])
	}
	if fields["error"] != "secret detail" {
		t.Errorf("error field: got %v", fields["error"])
	}
}

func TestLogNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	errLog := errorsfeature.NewErrorLogger(zap.New(core))

	rec := testutil.NewRecorder()
	errLog.LogNotFound(rec, testutil.NewRequest("GET", "/nope"), "no route")

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertBody(t, "Not Found")
	if logs.Len() != 1 || logs.All()[0].Level != zapcore.InfoLevel {
		t.Errorf("expected one info entry, got %v", logs.All())
	}
}

func TestLogMethodNotAllowed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	errLog := errorsfeature.NewErrorLogger(zap.New(core))

	rec := testutil.NewRecorder()
	errLog.LogMethodNotAllowed(rec, testutil.NewRequest("POST", "/author"), "method not allowed")

	rec.AssertStatus(t, http.StatusMethodNotAllowed)
	rec.AssertContentType(t, "text/plain")
	rec.AssertBody(t, "Method Not Allowed")
	if logs.Len() != 1 || logs.All()[0].ContextMap()["method"] != "POST" {
		t.Errorf("expected one entry with method=POST, got %v", logs.All())
	}
}

func TestNilLogger(t *testing.T) {
	errLog := errorsfeature.NewErrorLogger(nil)
	rec := testutil.NewRecorder()

	errLog.LogServerError(rec, testutil.NewRequest("GET", "/author"), "boom", stderrors.New("x"))

	rec.AssertStatus(t, http.StatusInternalServerError)
}
