package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) getClientConfig(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "player_id")

	profile, active, err := h.service.GetEligibleCampaigns(r.Context(), playerID)
	if err != nil {
		status, detail := mapDomainError(err)
		if status == http.StatusInternalServerError {
			slog.Error("Failed to build client config",
				"player_id", playerID,
				"error", err,
				"request_id", requestIDFromContext(r.Context()),
			)
		}
		writeError(w, status, detail)
		return
	}

	writeJSON(w, http.StatusOK, toClientConfigResponse(profile, active))
}

func (h *Handler) createMockData(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SeedMockData(r.Context()); err != nil {
		slog.Error("Failed to seed mock data",
			"error", err,
			"request_id", requestIDFromContext(r.Context()),
		)
		status, detail := mapDomainError(err)
		writeError(w, status, detail)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Created mock player and campaign data."})
}
