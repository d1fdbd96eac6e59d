package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/persona/internal/app/system/settings"
	"github.com/dalemusser/persona/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
// Client is nil when the Mongo settings source is disabled.
type Handler struct {
	Client   *mongo.Client
	Settings settings.Values
	Log      *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(client *mongo.Client, values settings.Values, logger *zap.Logger) *Handler {
	return &Handler{
		Client:   client,
		Settings: values,
		Log:      logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string         `json:"status"`
	Database string         `json:"database"`
	Settings settingsStatus `json:"settings"`
	Message  string         `json:"message,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// settingsStatus reports which persona settings are loaded. Values are
// never included.
type settingsStatus struct {
	Loaded  int      `json:"loaded"`
	Missing []string `json:"missing"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "settings":{"loaded":3,"missing":[]} }
//
// database is "disabled" when no Mongo source is configured. On DB
// failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	missing := h.Settings.Missing(settings.Required()...)
	if missing == nil {
		missing = []string{}
	}
	resp := healthResponse{
		Status:   "ok",
		Database: "disabled",
		Settings: settingsStatus{
			Loaded:  h.Settings.Len(),
			Missing: missing,
		},
	}

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		resp.Database = "connected"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
