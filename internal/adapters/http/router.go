package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"profile-matcher/internal/core/domain"
)

// ClientConfigService is the application surface the transport serves.
type ClientConfigService interface {
	GetEligibleCampaigns(ctx context.Context, playerID string) (*domain.Profile, []string, error)
	SeedMockData(ctx context.Context) error
}

type Options struct {
	RequestTimeout     time.Duration
	EnableSeedEndpoint bool
}

type Handler struct {
	service ClientConfigService
}

func NewHandler(service ClientConfigService) *Handler {
	return &Handler{service: service}
}

func NewRouter(handler *Handler, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)
	r.Use(metricsMiddleware)
	if opts.RequestTimeout > 0 {
		r.Use(timeoutMiddleware(opts.RequestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
	})

	r.Get("/get_client_config/{player_id}", handler.getClientConfig)
	if opts.EnableSeedEndpoint {
		r.Post("/create_mock_data", handler.createMockData)
	}

	return r
}
