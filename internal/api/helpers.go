package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

const errInternalText = "Internal error"

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Error map[string][]string `json:"error"`
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, msg, "error", err.Error(), "http_code", code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(StatusResponse{
		Success: false,
		Message: msg,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode error response",
			"error", err.Error(),
			"http_code", http.StatusInternalServerError)
	}
}

// sendValidationErr reports failed field rules the way the API contract
// requires: a field -> messages map under an "error" key.
func sendValidationErr(ctx context.Context, w http.ResponseWriter, fieldErrs map[string][]string) {
	slog.WarnContext(ctx, "validation failed", "fields", len(fieldErrs), "http_code", http.StatusUnprocessableEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)

	err := json.NewEncoder(w).Encode(ValidationErrorResponse{Error: fieldErrs})
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode validation response",
			"error", err.Error(),
			"http_code", http.StatusInternalServerError)
	}
}

func sendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}
}
