package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"profile-matcher/internal/core/domain"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Player not found"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid request"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
