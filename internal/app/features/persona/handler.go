package persona

import (
	"errors"
	"io"
	"net/http"

	errorsfeature "github.com/dalemusser/persona/internal/app/features/errors"
	"github.com/dalemusser/persona/internal/app/system/metrics"
	"github.com/dalemusser/persona/internal/app/system/settings"
	"go.uber.org/zap"
)

// Handler serves configured settings as plain text.
type Handler struct {
	Settings settings.Values
	Metrics  *metrics.Metrics
	ErrLog   *errorsfeature.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a persona Handler. m may be nil when metrics are off.
func NewHandler(values settings.Values, m *metrics.Metrics, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Settings: values,
		Metrics:  m,
		ErrLog:   errLog,
		Log:      logger,
	}
}

// ServeAuthor handles GET /author.
func (h *Handler) ServeAuthor(w http.ResponseWriter, r *http.Request) {
	h.serveSetting(w, r, settings.KeyAuthor)
}

// ServeLifeQuote handles GET /life-quote.
func (h *Handler) ServeLifeQuote(w http.ResponseWriter, r *http.Request) {
	h.serveSetting(w, r, settings.KeyLifeQuote)
}

// ServePurpose handles GET /purpose.
func (h *Handler) ServePurpose(w http.ResponseWriter, r *http.Request) {
	h.serveSetting(w, r, settings.KeyPurpose)
}

// serveSetting writes the value for key verbatim with a 200. A missing key
// becomes a logged 500 whose body never includes configuration.
func (h *Handler) serveSetting(w http.ResponseWriter, r *http.Request, key string) {
	value, err := h.Settings.Get(key)
	if err != nil {
		if errors.Is(err, settings.ErrConfigurationMissing) {
			h.Metrics.ObserveSetting(key, metrics.OutcomeMissing)
		}
		h.ErrLog.LogServerError(w, r, "setting lookup failed", err)
		return
	}
	h.Metrics.ObserveSetting(key, metrics.OutcomeOK)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, value); err != nil {
		h.Log.Warn("write setting response failed",
			zap.String("setting", key),
			zap.Error(err))
	}
}
