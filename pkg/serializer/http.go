package serializer

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
)

// RespondJSON writes a JSON response with the given status code and data.
// The body is encoded before any header is written so that an encoding
// failure never produces a partial response.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}
