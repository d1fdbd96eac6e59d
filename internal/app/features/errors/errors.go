// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrorLogger logs handler failures and writes a plain-text error response.
// Response bodies carry only the generic status text; details stay in the log.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs err and responds 500.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	e.log(zapcore.ErrorLevel, r, msg, err)
	writePlain(w, http.StatusInternalServerError)
}

// LogNotFound logs at info level and responds 404.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	e.log(zapcore.InfoLevel, r, msg, nil)
	writePlain(w, http.StatusNotFound)
}

// LogMethodNotAllowed logs at info level and responds 405.
func (e *ErrorLogger) LogMethodNotAllowed(w http.ResponseWriter, r *http.Request, msg string) {
	e.log(zapcore.InfoLevel, r, msg, nil)
	writePlain(w, http.StatusMethodNotAllowed)
}

func (e *ErrorLogger) log(level zapcore.Level, r *http.Request, msg string, err error) {
	if e == nil || e.Log == nil {
		return
	}
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if ce := e.Log.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}

func writePlain(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(http.StatusText(status)))
}
