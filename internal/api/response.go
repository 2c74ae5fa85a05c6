package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "mkpp-service/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps err to its HTTP status. Anything without one is logged and
// reported as a 500.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	code, msg := apperrors.StatusOf(err)
	if code >= http.StatusInternalServerError {
		log.Error("Request failed", zap.Error(err))
	}
	writeJSON(w, code, map[string]string{"error": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Wrap(http.StatusBadRequest, "Invalid request", err)
	}
	return nil
}
