// Package v1handler implements the v1 HTTP handlers: brief intake and the
// error-to-status mapping for pipeline failures.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dhakseshr/tds-project1/internal/pipeline"
	"github.com/dhakseshr/tds-project1/pkg/logger"
	"github.com/dhakseshr/tds-project1/pkg/serrors"

	"go.uber.org/zap"
)

// Deps holds the dependencies required by the v1 handlers.
type Deps struct {
	Pipeline pipeline.Pipeline
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// errorBody is the JSON error envelope returned to clients.
type errorBody struct {
	// Code is a machine-readable error code, e.g. "VALIDATION".
	Code string `json:"code"`
	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// writeJSON serializes v with the given status. Serialization failures are
// logged but not surfaced; headers have already been written by then.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "could not write response", zap.Error(err))
	}
}

// writeError maps a pipeline error to its HTTP status and error code. Each
// stage failure stays distinguishable: intake rejections are client errors,
// generation and publish failures are upstream errors. A publish conflict
// (repository name taken) maps to 409 so callers can retry with a new name.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"

	switch {
	case errors.Is(err, serrors.ErrValidation):
		status, code = http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, serrors.ErrGeneration):
		status, code = http.StatusBadGateway, "GENERATION"
	case errors.Is(err, serrors.ErrPublish):
		status, code = http.StatusBadGateway, "PUBLISH"
		if errors.Is(err, serrors.ErrConflict) {
			status = http.StatusConflict
		}
	case errors.Is(err, serrors.ErrUnauthorized):
		status, code = http.StatusUnauthorized, "UNAUTHORIZED"
	}

	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.String("code", code), zap.Error(err))
	} else {
		logger.Warn(r.Context(), "request rejected", zap.String("code", code), zap.Error(err))
	}

	writeJSON(w, r, status, errorBody{Code: code, Message: err.Error()})
}
