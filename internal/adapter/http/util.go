package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"tasklist/internal/app"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

func parseJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// writeAppError maps service errors to the fixed status codes of the
// API. Unexpected errors are logged with detail and surfaced as a
// generic 500; raw store errors never reach the client.
func (s *Server) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case app.IsValidation(err):
		writeFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrEmailTaken):
		writeFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrAccountNotFound), errors.Is(err, app.ErrNotFound):
		writeFail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, app.ErrInvalidCredentials):
		writeFail(w, http.StatusUnauthorized, err.Error())
	default:
		s.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeFail(w, http.StatusInternalServerError, "internal error")
	}
}
